package domain

import "time"

// Dimensiones fijas del modelo de rasgos. El orden define la posicion
// en el vector persistido; no reordenar.
const (
	TraitAnalytical   = "analytical"
	TraitCreative     = "creative"
	TraitExtroversion = "extroversion"
	TraitEmpathy      = "empathy"
	TraitLeadership   = "leadership"
	TraitTechLearning = "tech_learning"
	TraitHandsOn      = "hands_on"
	TraitOrganization = "organization"
	TraitRiskTaking   = "risk_taking"
)

// TraitDimensions lista las 9 dimensiones en orden canonico.
var TraitDimensions = []string{
	TraitAnalytical,
	TraitCreative,
	TraitExtroversion,
	TraitEmpathy,
	TraitLeadership,
	TraitTechLearning,
	TraitHandsOn,
	TraitOrganization,
	TraitRiskTaking,
}

// Dominios de carrera soportados por el catalogo.
const (
	DomainTech          = "Tech"
	DomainDesign        = "Design"
	DomainManufacturing = "Manufacturing"
	DomainMarketing     = "Marketing"
	DomainData          = "Data"
	DomainSales         = "Sales"

	// DomainGeneral marca preguntas sin dominio; siempre pesan 1.0.
	DomainGeneral = ""
)

// KnownDomains lista los 6 dominios validos para preferencias y carreras.
var KnownDomains = []string{
	DomainTech,
	DomainDesign,
	DomainManufacturing,
	DomainMarketing,
	DomainData,
	DomainSales,
}

// IsKnownDomain indica si el dominio pertenece al conjunto fijo.
func IsKnownDomain(d string) bool {
	for _, k := range KnownDomains {
		if k == d {
			return true
		}
	}
	return false
}

// IsKnownTrait indica si el nombre pertenece a las 9 dimensiones fijas.
func IsKnownTrait(t string) bool {
	for _, k := range TraitDimensions {
		if k == t {
			return true
		}
	}
	return false
}

// Pesos por rango de preferencia. Funcion pura del rango, nunca se almacenan.
const (
	FirstPreferenceWeight  = 1.0
	SecondPreferenceWeight = 0.7
	ThirdPreferenceWeight  = 0.4
)

// DomainPreference es la terna ordenada de dominios elegida por el candidato.
type DomainPreference struct {
	First  string `json:"first"`
	Second string `json:"second"`
	Third  string `json:"third"`
}

// Validate rechaza dominios desconocidos o duplicados en la terna.
func (p DomainPreference) Validate() error {
	for _, d := range []string{p.First, p.Second, p.Third} {
		if !IsKnownDomain(d) {
			return ErrUnknownDomain
		}
	}
	if p.First == p.Second || p.First == p.Third || p.Second == p.Third {
		return ErrDuplicateDomain
	}
	return nil
}

// WeightFor devuelve el peso del dominio segun su rango en la terna.
// Preguntas generales (dominio vacio) siempre pesan 1.0.
func (p DomainPreference) WeightFor(domain string) float64 {
	switch domain {
	case DomainGeneral, p.First:
		return FirstPreferenceWeight
	case p.Second:
		return SecondPreferenceWeight
	case p.Third:
		return ThirdPreferenceWeight
	default:
		return 0.0
	}
}

// Answer es un par (pregunta, opcion elegida) ya validado aguas arriba.
type Answer struct {
	QuestionID string `json:"question_id"`
	OptionID   string `json:"option_id"`
}

// TraitVector mapea cada dimension fija a un score en [0,1].
// Se construye una vez por cuestionario completado; inmutable despues.
type TraitVector map[string]float64

// Values devuelve los scores en el orden canonico de TraitDimensions.
func (v TraitVector) Values() []float64 {
	out := make([]float64, len(TraitDimensions))
	for i, name := range TraitDimensions {
		out[i] = v[name]
	}
	return out
}

// QuestionOption es una opcion de respuesta con sus aportes por rasgo.
type QuestionOption struct {
	ID            string             `json:"id"`
	Text          string             `json:"text"`
	Contributions map[string]float64 `json:"contributions"`
}

// Question pertenece a un dominio (o es general) y ofrece opciones cerradas.
type Question struct {
	ID      string           `json:"id"`
	Text    string           `json:"text"`
	Domain  string           `json:"domain,omitempty"`
	Options []QuestionOption `json:"options"`
}

// Option busca una opcion por id.
func (q Question) Option(id string) (QuestionOption, bool) {
	for _, opt := range q.Options {
		if opt.ID == id {
			return opt, true
		}
	}
	return QuestionOption{}, false
}

// CareerProfile es una entrada inmutable del catalogo.
// CoreSkills, GrowthPaths y SalaryRange alimentan las plantillas estaticas.
type CareerProfile struct {
	ID             string             `json:"id"`
	Name           string             `json:"name"`
	Domain         string             `json:"domain"`
	RequiredTraits map[string]float64 `json:"required_traits"`
	SalaryRange    string             `json:"salary_range"`
	CoreSkills     []string           `json:"core_skills"`
	GrowthPaths    []string           `json:"growth_paths"`
}

// CareerMatch es el resultado de puntuar una carrera contra el candidato.
// Derivado, nunca persistido fuera de su sesion.
type CareerMatch struct {
	Career          CareerProfile `json:"career"`
	BaseScore       float64       `json:"base_score"`
	DomainWeight    float64       `json:"domain_weight"`
	FinalScore      float64       `json:"final_score"`
	MatchPercentage int           `json:"match_percentage"`
}

// InsightSource etiqueta el origen del texto de insight.
type InsightSource string

const (
	SourceGenerated InsightSource = "generated"
	SourceCached    InsightSource = "cached"
	SourceTemplate  InsightSource = "template"
)

// CareerInsight es el bloque de texto por carrera, generado o de plantilla.
type CareerInsight struct {
	Explanation     string   `json:"explanation"`
	SkillsToDevelop []string `json:"skills_to_develop"`
	GrowthPaths     []string `json:"growth_paths"`
	SalaryRange     string   `json:"salary_range"`
}

// Recommendation combina el match con su insight y la etiqueta de origen.
type Recommendation struct {
	Match   CareerMatch   `json:"match"`
	Insight CareerInsight `json:"insight"`
	Source  InsightSource `json:"source"`
}

// RecommendationSet es la salida completa de una sesion: vector, top-5 y
// desglose de origenes para observabilidad/costos.
type RecommendationSet struct {
	SessionID       string                `json:"session_id"`
	Vector          TraitVector           `json:"trait_vector"`
	Recommendations []Recommendation      `json:"recommendations"`
	Sources         map[InsightSource]int `json:"insight_sources"`
	CreatedAt       time.Time             `json:"created_at"`
}
