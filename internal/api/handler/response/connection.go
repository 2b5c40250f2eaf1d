package response

// Connection is a stored SFTP configuration as exposed by the API.
// Secret fields are masked: "*****" when a value is set, empty
// otherwise.
type Connection struct {
	ID         uint   `json:"id"`
	ExternalID string `json:"externalId"`
	Name       string `json:"name"`
	Hostname   string `json:"hostname"`
	Port       int    `json:"port"`
	User       string `json:"user"`
	Password   string `json:"password"`
	PrivateKey string `json:"privateKey"`
	Path       string `json:"path"`
	AppendDate bool   `json:"appendDate"`
	AuthMethod string `json:"authMethod"`
}
