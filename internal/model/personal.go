package model

import "github.com/shopspring/decimal"

// Cargo is an employee position (cajero, vendedor, bodeguero...).
type Cargo struct {
	IDCargo     int64  `gorm:"column:id_cargo;primaryKey;autoIncrement:false" json:"id_cargo"`
	Descripcion string `gorm:"column:descripcion;type:varchar(100);not null;uniqueIndex:idx_cargo_descripcion_ci,expression:LOWER(descripcion)" json:"descripcion"`
}

func (Cargo) TableName() string { return "cargo" }

// Empleado belongs to one branch and holds one position.
// Activo is the 'S'/'N' flag; inactive employees are kept for history.
type Empleado struct {
	IDEmpleado   int64           `gorm:"column:id_empleado;primaryKey;autoIncrement:false" json:"id_empleado"`
	Rut          string          `gorm:"column:rut;type:varchar(12);not null;uniqueIndex:idx_empleado_rut_ci,expression:LOWER(rut)" json:"rut"`
	Nombres      string          `gorm:"column:nombres;type:varchar(100);not null" json:"nombres"`
	Apellidos    string          `gorm:"column:apellidos;type:varchar(100);not null" json:"apellidos"`
	Correo       string          `gorm:"column:correo;type:varchar(150);not null;uniqueIndex:idx_empleado_correo_ci,expression:LOWER(correo)" json:"correo"`
	Telefono     *string         `gorm:"column:telefono;type:varchar(20)" json:"telefono"`
	Salario      decimal.Decimal `gorm:"column:salario;type:decimal(12,2);not null;check:chk_empleado_salario,salario > 0" json:"salario"`
	IDCargo      int64           `gorm:"column:id_cargo;not null;index" json:"id_cargo"`
	IDSucursal   int64           `gorm:"column:id_sucursal;not null;index" json:"id_sucursal"`
	PasswordHash string          `gorm:"column:password_hash;type:varchar(100);not null" json:"-"`
	Activo       string          `gorm:"column:activo;type:char(1);not null;default:'S';check:chk_empleado_activo,activo IN ('S','N')" json:"activo"`

	Cargo    *Cargo    `gorm:"foreignKey:IDCargo;references:IDCargo" json:"-"`
	Sucursal *Sucursal `gorm:"foreignKey:IDSucursal;references:IDSucursal" json:"-"`
}

func (Empleado) TableName() string { return "empleado" }
