package models

import (
	"strings"
	"time"
)

type ClientType string

const (
	ClientAvulso     ClientType = "avulso"
	ClientFidelidade ClientType = "fidelidade"
	ClientMensalista ClientType = "mensalista"
)

// Client is identified for business purposes by its CPF, stored as 11 digits.
type Client struct {
	ID       string     `json:"id" validate:"required"`
	Name     string     `json:"name" validate:"required"`
	Cpf      string     `json:"cpf" validate:"len=11,numeric"`
	Phone    string     `json:"phone"`
	Type     ClientType `json:"type" validate:"oneof=avulso fidelidade mensalista"`
	JoinedAt time.Time  `json:"joinedAt"`
}

func (c *Client) Normalize() {
	c.Cpf = NormalizeCPF(c.Cpf)
	c.Type = ClientType(normalizeEnum(string(c.Type)))
	if c.Type == "" {
		c.Type = ClientAvulso
	}
}

// NormalizeCPF strips formatting ("123.456.789-00" -> "12345678900").
func NormalizeCPF(cpf string) string {
	var b strings.Builder
	b.Grow(11)
	for _, r := range cpf {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF only checks the digit count; check digits are not verified.
func IsValidCPF(cpf string) bool {
	return len(NormalizeCPF(cpf)) == 11
}
