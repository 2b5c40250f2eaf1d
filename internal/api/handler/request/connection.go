package request

// SFTP connection DTOs

type CreateConnection struct {
	Name       string `json:"name" validate:"required"`
	Hostname   string `json:"hostname" validate:"required"`
	Port       int    `json:"port" validate:"omitempty,min=1,max=65535"`
	User       string `json:"user" validate:"required"`
	Password   string `json:"password"`
	PrivateKey string `json:"privateKey"`
	Path       string `json:"path"`
	AppendDate bool   `json:"appendDate"`
}

type UpdateConnection struct {
	Name       *string `json:"name,omitempty"`
	Hostname   *string `json:"hostname,omitempty"`
	Port       *int    `json:"port,omitempty" validate:"omitempty,min=1,max=65535"`
	User       *string `json:"user,omitempty"`
	Password   *string `json:"password,omitempty"`
	PrivateKey *string `json:"privateKey,omitempty"`
	Path       *string `json:"path,omitempty"`
	AppendDate *bool   `json:"appendDate,omitempty"`
}
