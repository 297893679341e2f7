package postgres

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// BaseModel gera o UUID no Go para funcionar também no SQLite dos testes
type BaseModel struct {
	ID        string    `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time `gorm:"index"`
	UpdatedAt time.Time
}

func (m *BaseModel) BeforeCreate(_ *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}

// UserModel é o model GORM para usuários
type UserModel struct {
	BaseModel
	Username     string     `gorm:"type:varchar(30);uniqueIndex;not null"`
	Email        string     `gorm:"type:varchar(255);uniqueIndex;not null"`
	PasswordHash string     `gorm:"column:password;type:varchar(255);not null"`
	FirstName    string     `gorm:"type:varchar(50);not null"`
	LastName     string     `gorm:"type:varchar(50);not null"`
	BirthDate    *time.Time `gorm:"type:date"`
	BirthTime    *string    `gorm:"type:varchar(10)"`
	BirthPlace   *string    `gorm:"type:varchar(255)"`
	ZodiacSign   *string    `gorm:"type:varchar(20)"`
	IsAdmin      bool       `gorm:"not null"`
	IsActive     bool       `gorm:"not null;index"`
}

func (UserModel) TableName() string {
	return "users"
}

// HoroscopeModel não tem índice único em (signo, tipo, data)
type HoroscopeModel struct {
	BaseModel
	ZodiacSign    string    `gorm:"type:varchar(20);not null;index:idx_horoscopes_lookup"`
	Type          string    `gorm:"type:varchar(10);not null;index:idx_horoscopes_lookup"`
	Content       string    `gorm:"type:text;not null"`
	Date          time.Time `gorm:"not null;index:idx_horoscopes_lookup"`
	LuckyNumber   *int
	LuckyColor    *string `gorm:"type:varchar(50)"`
	Mood          *string `gorm:"type:varchar(50)"`
	Compatibility *string `gorm:"type:varchar(255)"`
}

func (HoroscopeModel) TableName() string {
	return "horoscopes"
}

// BlogModel é o model GORM para posts; Author é carregado só para leitura
type BlogModel struct {
	BaseModel
	Title         string                      `gorm:"type:varchar(200);not null"`
	Slug          string                      `gorm:"type:varchar(200);uniqueIndex;not null"`
	Content       string                      `gorm:"type:text;not null"`
	Excerpt       *string                     `gorm:"type:text"`
	FeaturedImage *string                     `gorm:"type:varchar(500)"`
	Tags          datatypes.JSONSlice[string] `gorm:"not null"`
	IsPublished   bool                        `gorm:"not null;index"`
	PublishedAt   *time.Time                  `gorm:"index"`
	AuthorID      string                      `gorm:"type:uuid;not null;index"`
	Author        *UserModel                  `gorm:"foreignKey:AuthorID;constraint:OnDelete:CASCADE"`
}

func (BlogModel) TableName() string {
	return "blogs"
}

// MessageModel guarda as mensagens do formulário de contato
type MessageModel struct {
	BaseModel
	Name      string     `gorm:"type:varchar(100);not null"`
	Email     string     `gorm:"type:varchar(255);not null"`
	Subject   string     `gorm:"type:varchar(200);not null"`
	Message   string     `gorm:"type:text;not null"`
	IsRead    bool       `gorm:"not null"`
	RepliedAt *time.Time
}

func (MessageModel) TableName() string {
	return "messages"
}

// AppointmentModel referencia Rashi apenas pelo nome do signo (sem FK)
type AppointmentModel struct {
	BaseModel
	ClientID         string          `gorm:"type:uuid;not null;index"`
	Client           *UserModel      `gorm:"foreignKey:ClientID;constraint:OnDelete:CASCADE"`
	ConsultationType string          `gorm:"type:varchar(20);not null"`
	ScheduledTime    time.Time       `gorm:"not null;index"`
	ZodiacSign       *string         `gorm:"type:varchar(20)"`
	Status           string          `gorm:"type:varchar(20);not null;index"`
	Notes            *string         `gorm:"type:text"`
	PreferredMethod  string          `gorm:"type:varchar(10);not null"`
	MeetingLink      *string         `gorm:"type:varchar(500)"`
	Price            decimal.Decimal `gorm:"type:decimal(10,2);not null"`
	Duration         int             `gorm:"not null"`
}

func (AppointmentModel) TableName() string {
	return "appointments"
}

// RashiModel é a tabela de referência dos 12 signos
type RashiModel struct {
	BaseModel
	Name          string                      `gorm:"type:varchar(20);uniqueIndex;not null"`
	Description   string                      `gorm:"type:text;not null"`
	Element       string                      `gorm:"type:varchar(10);not null"`
	RulingPlanet  string                      `gorm:"type:varchar(50);not null"`
	Traits        datatypes.JSONSlice[string] `gorm:"not null"`
	LuckyNumbers  datatypes.JSONSlice[int]    `gorm:"not null"`
	LuckyColors   datatypes.JSONSlice[string] `gorm:"not null"`
	Compatibility datatypes.JSONSlice[string] `gorm:"not null"`
	Dates         string                      `gorm:"type:varchar(50);not null"`
	Symbol        string                      `gorm:"type:varchar(10);not null"`
}

func (RashiModel) TableName() string {
	return "rashis"
}

// AllModels lista os models na ordem de migração
func AllModels() []interface{} {
	return []interface{}{
		&UserModel{},
		&HoroscopeModel{},
		&BlogModel{},
		&MessageModel{},
		&AppointmentModel{},
		&RashiModel{},
	}
}
