package constant

import "time"

const (
	DateLayout        = time.DateOnly
	ExportDateLayout  = "02/01/2006, 15:04:05"
	DefaultExportZone = "Asia/Dhaka"
	DefaultNoticeText = "Welcome to Mealky Way! Fresh milk delivery available daily to all RU and RMC halls!"
)
