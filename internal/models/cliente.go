package models

// Cadastro simples de pessoa: nome, idade e UF.
// Os nomes JSON fazem parte do contrato com o app.
type Cliente struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Nome  string `gorm:"size:100;not null" json:"Nome"`
	Idade int    `gorm:"not null" json:"Idade"`
	UF    string `gorm:"size:2;not null" json:"UF"`
}
