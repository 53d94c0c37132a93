package model

// Cliente is a registered buyer. Correo is unique case-insensitively.
type Cliente struct {
	IDCliente    int64   `gorm:"column:id_cliente;primaryKey;autoIncrement:false" json:"id_cliente"`
	Nombres      string  `gorm:"column:nombres;type:varchar(100);not null" json:"nombres"`
	Apellidos    string  `gorm:"column:apellidos;type:varchar(100);not null" json:"apellidos"`
	Correo       string  `gorm:"column:correo;type:varchar(150);not null;uniqueIndex:idx_cliente_correo_ci,expression:LOWER(correo)" json:"correo"`
	Telefono     *string `gorm:"column:telefono;type:varchar(20)" json:"telefono"`
	PasswordHash string  `gorm:"column:password_hash;type:varchar(100);not null" json:"-"`
	Activo       string  `gorm:"column:activo;type:char(1);not null;default:'S';check:chk_cliente_activo,activo IN ('S','N')" json:"activo"`
}

func (Cliente) TableName() string { return "cliente" }
