package model

// Ciudad is a city where branches operate.
type Ciudad struct {
	IDCiudad    int64  `gorm:"column:id_ciudad;primaryKey;autoIncrement:false" json:"id_ciudad"`
	Descripcion string `gorm:"column:descripcion;type:varchar(100);not null" json:"descripcion"`
}

func (Ciudad) TableName() string { return "ciudad" }

// Sucursal is a physical retail location.
type Sucursal struct {
	IDSucursal     int64   `gorm:"column:id_sucursal;primaryKey;autoIncrement:false" json:"id_sucursal"`
	NombreSucursal string  `gorm:"column:nombre_sucursal;type:varchar(100);not null;uniqueIndex:idx_sucursal_nombre_ci,expression:LOWER(nombre_sucursal)" json:"nombre_sucursal"`
	Direccion      *string `gorm:"column:direccion;type:varchar(200)" json:"direccion"`
	IDCiudad       int64   `gorm:"column:id_ciudad;not null;index" json:"id_ciudad"`

	Ciudad *Ciudad `gorm:"foreignKey:IDCiudad;references:IDCiudad" json:"-"`
}

func (Sucursal) TableName() string { return "sucursal" }
