package scoring

// Weights blends the six factor scores into the overall score. Salary carries
// the largest share because the product optimizes for income advancement.
// Values are relative; Overall normalizes by their sum.
type Weights struct {
	Salary   float64
	Skills   float64
	Career   float64
	Company  float64
	Location float64
	Growth   float64
}

func DefaultWeights() Weights {
	return Weights{
		Salary:   0.35,
		Skills:   0.25,
		Career:   0.20,
		Company:  0.10,
		Location: 0.05,
		Growth:   0.05,
	}
}

func (w Weights) sum() float64 {
	return w.Salary + w.Skills + w.Career + w.Company + w.Location + w.Growth
}

// CompanyWeights weight the three company attributes inside the company
// quality factor. Equal by default.
type CompanyWeights struct {
	Diversity float64
	Growth    float64
	Culture   float64
}

func DefaultCompanyWeights() CompanyWeights {
	return CompanyWeights{Diversity: 1, Growth: 1, Culture: 1}
}

func (w CompanyWeights) sum() float64 {
	return w.Diversity + w.Growth + w.Culture
}
