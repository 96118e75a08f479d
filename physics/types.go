package physics

import "fmt"

// Kind is the closed set of physics classifications.
type Kind int

const (
	KindPlayer Kind = iota
	KindWall
	KindEnemy
	KindProjectile
)

// ProjectileKind distinguishes projectile variants.
type ProjectileKind int

const (
	ProjectileBasic ProjectileKind = iota
	ProjectileSlowing
	projectileKindCount
)

// ObjType is a classification key. Projectile is only meaningful for
// KindProjectile.
type ObjType struct {
	Kind       Kind
	Projectile ProjectileKind
}

var (
	Player = ObjType{Kind: KindPlayer}
	Wall   = ObjType{Kind: KindWall}
	Enemy  = ObjType{Kind: KindEnemy}
)

// Projectile returns the type of a projectile of kind k.
func Projectile(k ProjectileKind) ObjType {
	return ObjType{Kind: KindProjectile, Projectile: k}
}

func (t ObjType) IsProjectile() bool {
	return t.Kind == KindProjectile
}

func (t ObjType) String() string {
	switch t.Kind {
	case KindPlayer:
		return "Player"
	case KindWall:
		return "Wall"
	case KindEnemy:
		return "Enemy"
	case KindProjectile:
		switch t.Projectile {
		case ProjectileBasic:
			return "Projectile(Basic)"
		case ProjectileSlowing:
			return "Projectile(Slowing)"
		}
	}
	return fmt.Sprintf("ObjType(%d,%d)", t.Kind, t.Projectile)
}

func (t ObjType) bit() TypeSet {
	if t.Kind == KindProjectile {
		return 1 << (uint(KindProjectile) + uint(t.Projectile))
	}
	return 1 << uint(t.Kind)
}

// TypeSet is a bitmask of ObjTypes, one bit per type and per projectile kind.
type TypeSet uint32

// NewTypeSet returns the set holding types.
func NewTypeSet(types ...ObjType) TypeSet {
	var s TypeSet
	for _, t := range types {
		s = s.With(t)
	}
	return s
}

// AllProjectiles returns every projectile type.
func AllProjectiles() TypeSet {
	var s TypeSet
	for k := ProjectileBasic; k < projectileKindCount; k++ {
		s = s.With(Projectile(k))
	}
	return s
}

// AllTypes returns every type in the taxonomy.
func AllTypes() TypeSet {
	return NewTypeSet(Player, Wall, Enemy) | AllProjectiles()
}

func (s TypeSet) Has(t ObjType) bool {
	return s&t.bit() != 0
}

func (s TypeSet) With(t ObjType) TypeSet {
	return s | t.bit()
}

func (s TypeSet) Without(t ObjType) TypeSet {
	return s &^ t.bit()
}
