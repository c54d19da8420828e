package catalog

// Document field names in the products collection.
const (
	FieldIsActive     = "isActive"
	FieldPrice        = "price"
	FieldCreatedAt    = "createdAt"
	FieldCategory     = "category"
	FieldIsBestseller = "isBestseller"
	FieldIsFeatured   = "isFeatured"
)

type Op string

const (
	OpEqual        Op = "=="
	OpGreaterEqual Op = ">="
	OpLessEqual    Op = "<="
)

type Predicate struct {
	Field string
	Op    Op
	Value interface{}
}

func (p Predicate) IsEquality() bool {
	return p.Op == OpEqual
}

type Direction int

const (
	Asc Direction = iota
	Desc
)

type Ordering struct {
	Field     string
	Direction Direction
}

// Plan is an ordered predicate list plus the sort the database applies.
type Plan struct {
	Predicates []Predicate
	Order      []Ordering
}

// Build translates filters into a query plan.
//
// Rating and availability never become predicates: Firestore cannot combine
// them with the price inequality, so they are post-filtered in memory.
// When a price range is set, price must be the first order key because the
// first inequality field has to lead the ordering.
func Build(f Filters) Plan {
	plan := Plan{
		Predicates: []Predicate{{Field: FieldIsActive, Op: OpEqual, Value: true}},
	}

	if f.HasPriceRange() {
		plan.Predicates = append(plan.Predicates,
			Predicate{Field: FieldPrice, Op: OpGreaterEqual, Value: f.PriceRange[0]},
			Predicate{Field: FieldPrice, Op: OpLessEqual, Value: f.PriceRange[1]},
		)
		plan.Order = []Ordering{{Field: FieldPrice, Direction: Asc}}
	} else {
		plan.Order = []Ordering{{Field: FieldCreatedAt, Direction: Desc}}
	}

	if f.Category != "" {
		plan.Predicates = append(plan.Predicates, Predicate{Field: FieldCategory, Op: OpEqual, Value: f.Category})
	}

	if f.IsBestseller {
		plan.Predicates = append(plan.Predicates, Predicate{Field: FieldIsBestseller, Op: OpEqual, Value: true})
	}

	return plan
}

// Reduced keeps only equality predicates and drops ordering. It is the
// retry plan after the database rejects a query for a missing index.
func (p Plan) Reduced() Plan {
	reduced := Plan{}
	for _, pred := range p.Predicates {
		if pred.IsEquality() {
			reduced.Predicates = append(reduced.Predicates, pred)
		}
	}
	return reduced
}

// SortField returns the leading order key, or "" when unordered.
func (p Plan) SortField() string {
	if len(p.Order) == 0 {
		return ""
	}
	return p.Order[0].Field
}

// FeaturedPlan selects active featured products, newest first.
func FeaturedPlan() Plan {
	return Plan{
		Predicates: []Predicate{
			{Field: FieldIsActive, Op: OpEqual, Value: true},
			{Field: FieldIsFeatured, Op: OpEqual, Value: true},
		},
		Order: []Ordering{{Field: FieldCreatedAt, Direction: Desc}},
	}
}
