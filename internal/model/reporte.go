package model

import "github.com/shopspring/decimal"

// ReporteVentas summarizes a branch's sales over a period.
type ReporteVentas struct {
	IDReporte       int64           `gorm:"column:id_reporte;primaryKey;autoIncrement:false" json:"id_reporte"`
	FechaGeneracion Fecha           `gorm:"column:fecha_generacion;not null;index" json:"fecha_generacion"`
	PeriodoInicio   Fecha           `gorm:"column:periodo_inicio;not null" json:"periodo_inicio"`
	PeriodoFin      Fecha           `gorm:"column:periodo_fin;not null" json:"periodo_fin"`
	TotalCalculado  decimal.Decimal `gorm:"column:total_calculado;type:decimal(14,2);not null" json:"total_calculado"`
	IDSucursal      int64           `gorm:"column:id_sucursal;not null;index" json:"id_sucursal"`

	Sucursal *Sucursal `gorm:"foreignKey:IDSucursal;references:IDSucursal" json:"-"`
}

func (ReporteVentas) TableName() string { return "reporte_ventas" }

// ReporteDesempenio holds an employee evaluation for a period.
type ReporteDesempenio struct {
	IDReporteDesempenio     int64   `gorm:"column:id_reporte_desempenio;primaryKey;autoIncrement:false" json:"id_reporte_desempenio"`
	IDEmpleado              int64   `gorm:"column:id_empleado;not null;index" json:"id_empleado"`
	FechaGeneracion         Fecha   `gorm:"column:fecha_generacion;not null;index" json:"fecha_generacion"`
	PeriodoEvaluacionInicio Fecha   `gorm:"column:periodo_evaluacion_inicio;not null" json:"periodo_evaluacion_inicio"`
	PeriodoEvaluacionFin    Fecha   `gorm:"column:periodo_evaluacion_fin;not null" json:"periodo_evaluacion_fin"`
	DatosEvaluacion         *string `gorm:"column:datos_evaluacion;type:text" json:"datos_evaluacion"`

	Empleado *Empleado `gorm:"foreignKey:IDEmpleado;references:IDEmpleado" json:"-"`
}

func (ReporteDesempenio) TableName() string { return "reporte_desempenio" }
