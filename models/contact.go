package models

import "time"

// Contact represents contacts table. Rows are created by the public contact
// form and are read-only afterwards; replies live in the messages table.
type Contact struct {
	ContactID uint      `gorm:"primaryKey;column:contact_id" json:"contact_id"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	Email     string    `gorm:"type:varchar(100);not null" json:"email"`
	Phone     *string   `gorm:"type:varchar(20)" json:"phone,omitempty"`
	Subject   string    `gorm:"type:varchar(200);not null" json:"subject"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	CreatedAt time.Time `json:"created_at"`

	Messages []Message `gorm:"foreignKey:ContactID" json:"messages,omitempty"`
}

// TableName specifies the table name for Contact
func (Contact) TableName() string {
	return "contacts"
}

// Message senders
const (
	SenderAdmin    = "admin"
	SenderCustomer = "customer"
)

// Message represents messages table, a reply thread attached to a contact
type Message struct {
	MessageID uint      `gorm:"primaryKey;column:message_id" json:"message_id"`
	ContactID uint      `gorm:"not null;index" json:"contact_id"`
	Sender    string    `gorm:"type:varchar(20);not null" json:"sender"`
	Body      string    `gorm:"type:text;not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}

// TableName specifies the table name for Message
func (Message) TableName() string {
	return "messages"
}
