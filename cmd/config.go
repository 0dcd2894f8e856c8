package cmd

type Config struct {
	HTTPPort            string
	DBHost              string
	DBPort              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBSslMode           string
	PushGatewayURL      string
	SMSGatewayURL       string
	NotifyAPIKey        string
	ReminderLeadMinutes string
}
