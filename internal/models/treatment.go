package models

// TreatmentRecord is one entry of a patient's treatment history (table Treat)
type TreatmentRecord struct {
	Name  string `json:"name" db:"name"`
	Sex   string `json:"sex" db:"sex"`
	Age   int    `json:"age" db:"age"`
	Treat string `json:"treat" db:"treat"`
	Med   string `json:"med" db:"med"`
	Price int    `json:"price" db:"price"`
}
