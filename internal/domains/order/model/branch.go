package model

import "kahramana-backend/internal/shared/i18n"

// Branch is a restaurant branch that receives WhatsApp orders
type Branch struct {
	ID       string
	NameAR   string
	NameEN   string
	Phone    string
	WhatsApp string
}

// Name returns the branch name in lang, falling back to the other language
func (b Branch) Name(lang i18n.Language) string {
	if lang == i18n.English && b.NameEN != "" {
		return b.NameEN
	}
	if b.NameAR != "" {
		return b.NameAR
	}
	return b.NameEN
}

type BranchResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	WhatsApp    string `json:"whatsapp"`
	WhatsAppURL string `json:"whatsapp_url"`
}
