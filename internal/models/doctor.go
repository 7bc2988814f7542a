package models

// Doctor is an entry of the fixed clinic directory.
type Doctor struct {
	ID             int     `json:"id"`
	Name           string  `json:"name"`
	Specialization string  `json:"specialization"`
	Experience     string  `json:"experience"`
	Rating         float64 `json:"rating"`
}

var directory = [...]Doctor{
	{ID: 1, Name: "Dr. Sarah Johnson", Specialization: "Cardiology", Experience: "15 years", Rating: 4.8},
	{ID: 2, Name: "Dr. Michael Chen", Specialization: "Dermatology", Experience: "12 years", Rating: 4.7},
	{ID: 3, Name: "Dr. Emily Williams", Specialization: "Pediatrics", Experience: "10 years", Rating: 4.9},
	{ID: 4, Name: "Dr. Robert Davis", Specialization: "Orthopedics", Experience: "18 years", Rating: 4.6},
	{ID: 5, Name: "Dr. Lisa Patel", Specialization: "Gynecology", Experience: "14 years", Rating: 4.8},
	{ID: 6, Name: "Dr. James Wilson", Specialization: "Neurology", Experience: "16 years", Rating: 4.7},
	{ID: 7, Name: "Dr. Maria Garcia", Specialization: "Psychiatry", Experience: "11 years", Rating: 4.9},
	{ID: 8, Name: "Dr. David Brown", Specialization: "Endocrinology", Experience: "13 years", Rating: 4.5},
}

// Doctors returns a copy of the directory in its fixed order.
func Doctors() []Doctor {
	out := make([]Doctor, len(directory))
	copy(out, directory[:])
	return out
}

// FindDoctor looks a doctor up by id.
func FindDoctor(id int) (Doctor, bool) {
	for _, d := range directory {
		if d.ID == id {
			return d, true
		}
	}
	return Doctor{}, false
}
