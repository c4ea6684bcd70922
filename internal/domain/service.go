package domain

// Service is a catalogued task with a certification requirement.
type Service struct {
	ID                       int
	Name                     string
	Certifications           []int
	CertificationRequirement CertificationRequirement
}

// ServiceMap indexes services by id.
type ServiceMap map[int]Service
