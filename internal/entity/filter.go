package entity

// Filter отбирает записи по набору способностей.
type Filter func(*Record) bool

var (
	WithPose      Filter = func(r *Record) bool { return r.Pose != nil }
	WithSprite    Filter = func(r *Record) bool { return r.Sprite != nil }
	WithAnimation Filter = func(r *Record) bool { return r.Animation != nil }
	WithEnemy     Filter = func(r *Record) bool { return r.Enemy != nil }
	WithPlayer    Filter = func(r *Record) bool { return r.Player != nil }
	WithGun       Filter = func(r *Record) bool { return r.Gun != nil }
	WithTrace     Filter = func(r *Record) bool { return r.Trace != nil }
)

// Without инвертирует фильтр.
func Without(f Filter) Filter {
	return func(r *Record) bool { return !f(r) }
}

// And пропускает запись, только если её пропускают все фильтры.
func And(filters ...Filter) Filter {
	return func(r *Record) bool {
		for _, f := range filters {
			if !f(r) {
				return false
			}
		}
		return true
	}
}
