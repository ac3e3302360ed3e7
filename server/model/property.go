package model

// Property rows hold runtime settings editable from the admin UI, such as
// the mail server credentials and cache TTL overrides.
type Property struct {
	Name  string `gorm:"type:varchar(64);primary_key;not null;comment:setting name" json:"name" validate:"required,max=64"`
	Value string `gorm:"type:varchar(2048);default:'';comment:setting value" json:"value" validate:"max=2048"`
}

func (r *Property) TableName() string {
	return "properties"
}

type TestMail struct {
	MailHost     string `json:"mail-host"`
	MailPort     string `json:"mail-port"`
	MailUsername string `json:"mail-username"`
	MailPassword string `json:"mail-password"`
	MailReceiver string `json:"mail-receiver"`
}
