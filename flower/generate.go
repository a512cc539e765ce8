package flower

import "fmt"
import "strings"

import "github.com/brianvoe/gofakeit/v6"

var smells = []string{
	"sweet", "spicy", "fruity", "musky", "fresh", "citrus", "honey",
	"earthy", "none",
}

var sanitize = strings.NewReplacer(",", "", "'", "", `"`, "", "[", "", "]", "")

// Generate `n` synthetic flowers, names are drawn from a pool of `uniq`
// distinct names so that keys repeat across records. Same `seed`
// generates the same dataset.
func Generate(n int, seed int64, uniq int) []Flower {
	if n <= 0 {
		return []Flower{}
	}
	if uniq <= 0 || uniq > n {
		uniq = n
	}
	faker := gofakeit.New(seed)

	names, seen := make([]string, 0, uniq), make(map[string]bool)
	for len(names) < uniq {
		base := sanitize.Replace(faker.Adjective() + " " + faker.Noun())
		name := base
		for k := 2; seen[name]; k++ {
			name = fmt.Sprintf("%v %v", base, k)
		}
		seen[name] = true
		names = append(names, name)
	}

	flowers := make([]Flower, 0, n)
	for i := 0; i < n; i++ {
		regions := make([]string, faker.Number(1, 3))
		for j := range regions {
			regions[j] = sanitize.Replace(faker.Country())
		}
		flowers = append(flowers, Flower{
			Name:    names[faker.Number(0, uniq-1)],
			Color:   sanitize.Replace(faker.Color()),
			Smell:   smells[faker.Number(0, len(smells)-1)],
			Regions: regions,
		})
	}
	return flowers
}
