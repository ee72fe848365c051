package usecase

import "math/rand/v2"

var jobTitles = []string{
	"Accountant, chartered",
	"Actuary",
	"Administrator, charities/voluntary organisations",
	"Air traffic controller",
	"Animal nutritionist",
	"Architect",
	"Art therapist",
	"Barista",
	"Biomedical scientist",
	"Broadcast engineer",
	"Building surveyor",
	"Careers adviser",
	"Chemical engineer",
	"Civil engineer, contracting",
	"Clinical psychologist",
	"Copywriter, advertising",
	"Data scientist",
	"Dentist",
	"Designer, interior/spatial",
	"Dietitian",
	"Editor, magazine features",
	"Electrical engineer",
	"Environmental consultant",
	"Estate manager/land agent",
	"Financial planner",
	"Fisheries officer",
	"Forensic scientist",
	"Geologist, engineering",
	"Graphic designer",
	"Health visitor",
	"Historic buildings inspector",
	"Hydrographic surveyor",
	"IT consultant",
	"Journalist, newspaper",
	"Landscape architect",
	"Lecturer, further education",
	"Librarian, academic",
	"Marine scientist",
	"Mechanical engineer",
	"Medical physicist",
	"Museum education officer",
	"Music therapist",
	"Nurse, adult",
	"Occupational therapist",
	"Optometrist",
	"Paramedic",
	"Pharmacist, hospital",
	"Physiotherapist",
	"Primary school teacher",
	"Production manager",
	"Quantity surveyor",
	"Radio producer",
	"Research scientist (life sciences)",
	"Sales executive",
	"Software engineer",
	"Solicitor",
	"Sound technician, broadcasting/film/video",
	"Speech and language therapist",
	"Systems analyst",
	"Tax adviser",
	"Teacher, secondary school",
	"Tour manager",
	"Translator",
	"Veterinary surgeon",
	"Web designer",
	"Writer",
}

func randomJobTitle() string {
	return jobTitles[rand.IntN(len(jobTitles))]
}
