package constant

// InstitutionNameByCode lists the institutions a hall can belong to. Halls are stored as "<code> - <hall name>".
var InstitutionNameByCode = map[string]string{
	"RU":  "University of Rajshahi",
	"RMC": "Rajshahi Medical College",
}

const HallInstitutionSeparator = " -"
