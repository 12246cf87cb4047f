package catalog

import (
	"fmt"

	"career-compass/internal/domain"
)

// Catalog es la tabla inmutable de perfiles de carrera, cargada una vez al
// arranque del proceso y de solo lectura durante toda su vida.
type Catalog struct {
	careers []domain.CareerProfile
	byID    map[string]int
}

// Load construye y valida el catalogo embebido. Cualquier error aqui es de
// configuracion y debe ser fatal para el proceso.
func Load() (*Catalog, error) {
	return newCatalog(careerTable)
}

func newCatalog(entries []domain.CareerProfile) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, domain.ErrEmptyCatalog
	}

	byID := make(map[string]int, len(entries))
	for i, c := range entries {
		if c.ID == "" || c.Name == "" {
			return nil, fmt.Errorf("career at index %d: missing id or name", i)
		}
		if _, dup := byID[c.ID]; dup {
			return nil, fmt.Errorf("career %s: duplicate id", c.ID)
		}
		if !domain.IsKnownDomain(c.Domain) {
			return nil, fmt.Errorf("career %s: %w: %q", c.ID, domain.ErrUnknownDomain, c.Domain)
		}
		for trait, score := range c.RequiredTraits {
			if !domain.IsKnownTrait(trait) {
				return nil, fmt.Errorf("career %s: %w: %q", c.ID, domain.ErrUnknownTrait, trait)
			}
			if score < 0 || score > 1 {
				return nil, fmt.Errorf("career %s: trait %s out of range: %v", c.ID, trait, score)
			}
		}
		// Datos de plantilla: deben existir para toda entrada, porque la
		// plantilla es el ultimo escalon del fallback y no puede fallar.
		if c.SalaryRange == "" || len(c.CoreSkills) < 3 || len(c.GrowthPaths) < 2 {
			return nil, fmt.Errorf("career %s: %w", c.ID, domain.ErrMissingTemplate)
		}
		byID[c.ID] = i
	}

	return &Catalog{careers: entries, byID: byID}, nil
}

// Careers devuelve los perfiles en orden de insercion. El slice es compartido;
// los llamadores no deben mutarlo.
func (c *Catalog) Careers() []domain.CareerProfile {
	return c.careers
}

// ByID busca un perfil por identificador.
func (c *Catalog) ByID(id string) (domain.CareerProfile, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.CareerProfile{}, false
	}
	return c.careers[i], true
}

// Len devuelve la cantidad de perfiles.
func (c *Catalog) Len() int {
	return len(c.careers)
}
