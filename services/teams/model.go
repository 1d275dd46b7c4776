package teams

type Team struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	City         string `json:"city"`
	Abbreviation string `json:"abbreviation"`
	Conference   string `json:"conference"`
	Division     string `json:"division"`
	LogoURL      string `json:"logo_url"`
	PrimaryColor string `json:"primary_color"`
}
