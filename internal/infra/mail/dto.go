package mail

type LeadAlertEmailData struct {
	Reason       string
	Name         string
	Email        string
	Company      string
	Position     string
	Revenue      string
	Quality      int
	Category     string
	PlanName     string
	FollowUpDate string
}

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	To       string // caixa do operador que recebe os alertas
}
