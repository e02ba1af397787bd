package models

type Professional struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Specialty string `json:"specialty"`
	Bio       string `json:"bio"`
	AvatarURL string `json:"avatarUrl"`
}
