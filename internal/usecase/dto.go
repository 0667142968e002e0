package usecase

import "github.com/atharvmahajan32/caprae-capital-subm/internal/entity"

type ClaimLeadInput struct {
	LeadID   string `json:"lead_id"`
	UserName string `json:"user_name"`
}

type ClaimLeadOutput struct {
	Lead     *entity.Lead     `json:"lead"`
	Activity *entity.Activity `json:"activity"`
}

type CreateSequenceInput struct {
	Recipient string             `json:"recipient"`
	Steps     []entity.EmailStep `json:"steps"`
}
