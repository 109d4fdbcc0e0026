package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleSuperAdmin Role = "superadmin"
)

// User nunca expõe a senha nas respostas da API
type User struct {
	ID           primitive.ObjectID `json:"_id" bson:"_id"`
	Name         string             `json:"name" bson:"name"`
	Email        string             `json:"email" bson:"email"`
	Password     string             `json:"-" bson:"password,omitempty"`
	City         string             `json:"city,omitempty" bson:"city,omitempty"`
	State        string             `json:"state,omitempty" bson:"state,omitempty"`
	Country      string             `json:"country" bson:"country"`
	Occupation   string             `json:"occupation" bson:"occupation"`
	PhoneNumber  string             `json:"phoneNumber" bson:"phoneNumber"`
	Transactions []string           `json:"transactions,omitempty" bson:"transactions,omitempty"`
	Role         Role               `json:"role" bson:"role"`
	CreatedAt    time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt    time.Time          `json:"updatedAt" bson:"updatedAt"`
}

// AffiliateStat lista as transações atribuídas a um usuário como afiliado
type AffiliateStat struct {
	ID             primitive.ObjectID   `json:"_id" bson:"_id"`
	UserID         primitive.ObjectID   `json:"userId" bson:"userId"`
	AffiliateSales []primitive.ObjectID `json:"affiliateSales" bson:"affiliateSales"`
	CreatedAt      time.Time            `json:"createdAt" bson:"createdAt"`
	UpdatedAt      time.Time            `json:"updatedAt" bson:"updatedAt"`
}

// UserWithAffiliateStat é o resultado do join users -> affiliatestats depois
// do unwind: um documento de usuário com o stat embutido.
type UserWithAffiliateStat struct {
	User           `bson:",inline"`
	AffiliateStats AffiliateStat `json:"affiliateStats" bson:"affiliateStats"`
}

// UserPerformance é a resposta do endpoint de performance
type UserPerformance struct {
	User  UserWithAffiliateStat `json:"user"`
	Sales []Transaction         `json:"sales"`
}

// OverallStat é produzido fora desta API e devolvido como está
type OverallStat bson.M
