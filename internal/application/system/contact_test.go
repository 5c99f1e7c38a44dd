package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hyunmoon/sidescroll/internal/domain/entity"
	"github.com/hyunmoon/sidescroll/internal/domain/event"
)

func box(x, y, w, h float64) *entity.Body {
	return &entity.Body{X: x, Y: y, W: w, H: h, Alive: true}
}

func TestContactSide(t *testing.T) {
	tests := []struct {
		name string
		a, b *entity.Body
		want entity.Side
	}{
		{
			name: "landing from above",
			a:    box(10, 0, 12, 14),
			b:    box(10, 12, 16, 14),
			want: entity.SideBottom,
		},
		{
			name: "bumping from below",
			a:    box(10, 24, 12, 14),
			b:    box(10, 12, 16, 14),
			want: entity.SideTop,
		},
		{
			name: "running in from the left",
			a:    box(0, 10, 12, 14),
			b:    box(10, 10, 16, 14),
			want: entity.SideRight,
		},
		{
			name: "running in from the right",
			a:    box(24, 10, 12, 14),
			b:    box(10, 10, 16, 14),
			want: entity.SideLeft,
		},
		{
			// Corner case with identical penetration on both axes.
			name: "equal overlap resolves vertically",
			a:    box(0, 0, 10, 10),
			b:    box(5, 5, 10, 10),
			want: entity.SideBottom,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, contactSide(tt.a, tt.b))
		})
	}
}

func TestContactSide_NearEdgeLandingIsStillVertical(t *testing.T) {
	// Falling onto the edge of an enemy: shallow Y overlap, shallow X
	// overlap of the same depth. Must read as a landing, not a side hit.
	a := box(0, 0, 12, 14)
	b := box(9, 11, 16, 14)
	assert.Equal(t, entity.SideBottom, contactSide(a, b))
}

func systemCtx() (*entity.Context, *event.Buffer, *[]entity.Entity) {
	var buf event.Buffer
	spawned := []entity.Entity{}
	ctx := &entity.Context{
		Events: &buf,
		Spawn:  func(e entity.Entity) { spawned = append(spawned, e) },
	}
	return ctx, &buf, &spawned
}

func TestResolveContacts_EachPairOnce(t *testing.T) {
	ctx, buf, _ := systemCtx()
	tuning := entity.EnemyTuning{MoveSpeed: 30, ScoreValue: 100}

	p := entity.NewPlayer(20, 10, entity.PlayerTuning{StompBounce: 220, Iframes: 1.5, DeathHop: 260, DeathDuration: 1.2})
	p.VY = 60
	e := entity.NewEnemy(entity.KindGoomba, 20, 20, tuning)

	ResolveContacts([]entity.Entity{p, e}, ctx)

	assert.Equal(t, 1, buf.CountKind(event.Stomp), "one contact, one stomp")
	assert.Equal(t, 1, buf.CountKind(event.ScoreDelta), "score awarded exactly once")
}

func TestResolveContacts_SkipsDeadBodies(t *testing.T) {
	ctx, buf, _ := systemCtx()
	tuning := entity.EnemyTuning{MoveSpeed: 30, ScoreValue: 100}

	a := entity.NewEnemy(entity.KindGoomba, 20, 20, tuning)
	b := entity.NewEnemy(entity.KindGoomba, 22, 20, tuning)
	a.Alive = false

	ResolveContacts([]entity.Entity{a, b}, ctx)

	assert.Zero(t, buf.Len(), "dead bodies generate no contacts")
}

func TestResolveContacts_ParticlesAreIntangible(t *testing.T) {
	ctx, buf, _ := systemCtx()

	spark := entity.NewParticle(entity.KindSparkle, 20, 20, 0, 0, 1)
	e := entity.NewEnemy(entity.KindGoomba, 20, 20, entity.EnemyTuning{MoveSpeed: 30, ScoreValue: 100})

	ResolveContacts([]entity.Entity{spark, e}, ctx)

	assert.Zero(t, buf.Len())
}

func TestResolveContacts_NonOverlappingPairsUntouched(t *testing.T) {
	ctx, buf, _ := systemCtx()
	tuning := entity.EnemyTuning{MoveSpeed: 30, ScoreValue: 100}

	a := entity.NewEnemy(entity.KindGoomba, 0, 0, tuning)
	b := entity.NewEnemy(entity.KindGoomba, 100, 0, tuning)

	ResolveContacts([]entity.Entity{a, b}, ctx)

	require.Zero(t, buf.Len())
	assert.Equal(t, entity.EnemyWalking, a.State)
	assert.Equal(t, entity.EnemyWalking, b.State)
}
