package shooter

import (
	"reflect"
	"testing"
)

func TestNewStateDefaults(t *testing.T) {
	s, _, _ := newTestState()

	if s.Level() != 1 {
		t.Errorf("level = %d, expected 1", s.Level())
	}
	if s.SpawnRate() != 2 {
		t.Errorf("spawn rate = %d, expected 2", s.SpawnRate())
	}
	if got := len(s.Entities()); got != 1 {
		t.Fatalf("entities = %d, expected only the craft", got)
	}
	if s.Entities()[0] != &s.Craft().Entity {
		t.Error("first entity should be the craft")
	}
	if snap := s.Snapshot(); snap.Health != 100 || snap.MaxHealth != 100 {
		t.Errorf("snapshot health = %d/%d, expected 100/100", snap.Health, snap.MaxHealth)
	}
}

func TestAddObjectLogs(t *testing.T) {
	s, _, logger := newTestState()
	add(s, KindAsteroid, 1, 1)

	if s.Count(KindAsteroid) != 1 {
		t.Errorf("asteroids = %d, expected 1", s.Count(KindAsteroid))
	}
	if !logger.has("Added object: Asteroid") {
		t.Errorf("missing add log, got %v", logger.lines)
	}
}

func TestUpdateGameMovement(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		tick  int
		start int
		want  int
	}{
		{"projectile ascends every tick", KindProjectile, 3, 10, 9},
		{"projectile ascends on descent tick", KindProjectile, 10, 10, 9},
		{"asteroid waits off-interval", KindAsteroid, 3, 5, 5},
		{"asteroid descends on interval", KindAsteroid, 10, 5, 6},
		{"enemy waits off-interval", KindEnemy, 11, 5, 5},
		{"enemy descends on interval", KindEnemy, 20, 5, 6},
		{"health pack is static", KindHealthPack, 10, 5, 5},
		{"shield pack is static", KindShieldPack, 10, 5, 5},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _, _ := newTestState()
			e := add(s, tc.kind, 2, tc.start)
			s.UpdateGame(tc.tick)
			if e.Y() != tc.want {
				t.Errorf("y = %d, expected %d", e.Y(), tc.want)
			}
			if e.X() != 2 {
				t.Errorf("x changed to %d", e.X())
			}
		})
	}
}

func TestUpdateGameCraftStays(t *testing.T) {
	s, _, _ := newTestState()
	for tick := 1; tick <= 30; tick++ {
		s.UpdateGame(tick)
	}
	if s.Craft().X() != 5 || s.Craft().Y() != 10 {
		t.Errorf("craft moved to (%d, %d)", s.Craft().X(), s.Craft().Y())
	}
}

func TestUpdateGameRemovesBelowField(t *testing.T) {
	s, _, _ := newTestState()
	atEdge := add(s, KindAsteroid, 1, 19)
	leaving := add(s, KindAsteroid, 2, 20)
	alsoLeaving := add(s, KindEnemy, 3, 20)
	stays := add(s, KindEnemy, 4, 5)

	s.UpdateGame(10)

	if !contains(s, atEdge) || atEdge.Y() != 20 {
		t.Error("entity reaching y=20 should remain")
	}
	if contains(s, leaving) || contains(s, alsoLeaving) {
		t.Error("entities past y=20 should be removed, including adjacent ones")
	}
	if !contains(s, stays) {
		t.Error("unrelated entity removed")
	}
	if got := len(s.Entities()); got != 3 {
		t.Errorf("entities = %d, expected 3", got)
	}
}

func TestUpdateGameKeepsProjectilesAboveField(t *testing.T) {
	s, _, _ := newTestState()
	bullet := add(s, KindProjectile, 4, 0)

	for tick := 1; tick <= 5; tick++ {
		s.UpdateGame(tick)
	}

	if !contains(s, bullet) {
		t.Fatal("only entities below the field are pruned")
	}
	if bullet.Y() != -5 {
		t.Errorf("projectile y = %d, expected -5", bullet.Y())
	}
}

func TestUpdateGameKeepsOrder(t *testing.T) {
	s, _, _ := newTestState()
	add(s, KindAsteroid, 0, 20)
	b := add(s, KindHealthPack, 1, 3)
	add(s, KindAsteroid, 2, 20)
	d := add(s, KindShieldPack, 3, 3)

	s.UpdateGame(10)

	got := s.Entities()
	want := []*Entity{&s.Craft().Entity, b, d}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("order not preserved after removal")
	}
}

func TestSpawnObjectsDrawOrder(t *testing.T) {
	want := []string{"int100", "int10", "int100", "int10", "int100", "int10", "bool"}

	tests := []struct {
		name  string
		ints  []int
		bools []bool
	}{
		{"nothing spawns", []int{99, 0, 99, 0, 99, 0}, []bool{false}},
		{"everything spawns", []int{0, 1, 0, 2, 0, 3}, []bool{true}},
		{"only power-up", []int{50, 1, 50, 2, 0, 3}, []bool{false}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptedSource{ints: tc.ints, bools: tc.bools}
			s := NewState(newTestConfig(), src, nil)
			s.SpawnObjects()
			if !reflect.DeepEqual(src.calls, want) {
				t.Errorf("draws = %v, expected %v", src.calls, want)
			}
		})
	}
}

func TestSpawnObjectsThresholds(t *testing.T) {
	// Default rate 2: asteroid below 2, enemy below 1, power-up below 0.5.
	tests := []struct {
		name   string
		ints   []int
		shield bool
		want   map[Kind]int
	}{
		{"asteroid at roll 1", []int{1, 4, 99, 0, 99, 0}, false, map[Kind]int{KindAsteroid: 1}},
		{"asteroid not at roll 2", []int{2, 4, 99, 0, 99, 0}, false, map[Kind]int{}},
		{"enemy at roll 0", []int{99, 0, 0, 4, 99, 0}, false, map[Kind]int{KindEnemy: 1}},
		{"enemy not at roll 1", []int{99, 0, 1, 4, 99, 0}, false, map[Kind]int{}},
		{"health pack", []int{99, 0, 99, 0, 0, 4}, false, map[Kind]int{KindHealthPack: 1}},
		{"shield pack", []int{99, 0, 99, 0, 0, 4}, true, map[Kind]int{KindShieldPack: 1}},
		{"all three", []int{0, 1, 0, 2, 0, 3}, true, map[Kind]int{KindAsteroid: 1, KindEnemy: 1, KindShieldPack: 1}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			src := &scriptedSource{ints: tc.ints, bools: []bool{tc.shield}}
			s := NewState(newTestConfig(), src, nil)
			s.SpawnObjects()

			for _, kind := range []Kind{KindAsteroid, KindEnemy, KindHealthPack, KindShieldPack} {
				if got := s.Count(kind); got != tc.want[kind] {
					t.Errorf("%v count = %d, expected %d", kind, got, tc.want[kind])
				}
			}
			for _, e := range s.Entities() {
				if e.Kind() != KindCraft && e.Y() != 0 {
					t.Errorf("%v spawned at y=%d, expected 0", e.Kind(), e.Y())
				}
			}
		})
	}
}

func TestSpawnObjectsColumn(t *testing.T) {
	src := &scriptedSource{ints: []int{0, 7, 99, 0, 99, 0}}
	s := NewState(newTestConfig(), src, nil)
	s.SpawnObjects()

	for _, e := range s.Entities() {
		if e.Kind() == KindAsteroid && e.X() != 7 {
			t.Errorf("asteroid at x=%d, expected 7", e.X())
		}
	}
}

func TestSpawnObjectsFractionalThreshold(t *testing.T) {
	// Rate 3: enemy threshold 1.5 admits rolls 0 and 1.
	for roll, want := range map[int]int{0: 1, 1: 1, 2: 0} {
		cfg := newTestConfig()
		cfg.Spawn.StartRate = 3
		src := &scriptedSource{ints: []int{99, 0, roll, 5, 99, 0}}
		s := NewState(cfg, src, nil)
		s.SpawnObjects()
		if got := s.Count(KindEnemy); got != want {
			t.Errorf("roll %d: enemies = %d, expected %d", roll, got, want)
		}
	}
}

func TestSpawnObjectsSkipsCraftCell(t *testing.T) {
	src := &scriptedSource{ints: []int{0, 3, 0, 4, 99, 0}}
	s := NewState(newTestConfig(), src, nil)
	place(s, 3, 0)

	s.SpawnObjects()

	if s.Count(KindAsteroid) != 0 {
		t.Error("asteroid should not spawn on the craft's cell")
	}
	if s.Count(KindEnemy) != 1 {
		t.Error("enemy in another column should still spawn")
	}
	if len(src.calls) != 7 {
		t.Errorf("draws = %d, expected 7", len(src.calls))
	}
}

func TestCollisionProjectileDestroysEnemy(t *testing.T) {
	s, _, _ := newTestState()
	place(s, 5, 12)
	bullet := add(s, KindProjectile, 5, 10)
	enemy := add(s, KindEnemy, 5, 10)

	s.CheckCollisions()

	if contains(s, bullet) || contains(s, enemy) {
		t.Error("projectile and enemy should both be removed")
	}
	if s.Craft().Health() != 100 || s.Craft().Score() != 0 {
		t.Errorf("craft changed: health %d score %d", s.Craft().Health(), s.Craft().Score())
	}
}

func TestCollisionProjectileShieldsCraftOnSharedCell(t *testing.T) {
	s, _, logger := newTestState()
	bullet := add(s, KindProjectile, 5, 10)
	enemy := add(s, KindEnemy, 5, 10)

	s.CheckCollisions()

	if contains(s, bullet) || contains(s, enemy) {
		t.Error("projectile and enemy on the craft cell should both be removed")
	}
	if !contains(s, &s.Craft().Entity) {
		t.Error("craft must stay in the game")
	}
	if s.Craft().Health() != 100 || s.Craft().Score() != 0 {
		t.Errorf("craft changed: health %d score %d", s.Craft().Health(), s.Craft().Score())
	}
	if logger.has("Hit by enemy! Health reduced by 20.") {
		t.Error("destroyed enemy should not damage the craft")
	}
}

func TestCollisionAsteroidOnCraftCellWithProjectile(t *testing.T) {
	s, _, _ := newTestState()
	bullet := add(s, KindProjectile, 5, 10)
	rock := add(s, KindAsteroid, 5, 10)

	s.CheckCollisions()

	if contains(s, rock) {
		t.Error("asteroid should hit the craft and be removed")
	}
	if !contains(s, bullet) {
		t.Error("projectile passes through asteroids and is not a craft collision")
	}
	if got := s.Craft().Health(); got != 90 {
		t.Errorf("health = %d, want 90", got)
	}
}

func TestCollisionProjectilePassesAsteroid(t *testing.T) {
	s, _, _ := newTestState()
	bullet := add(s, KindProjectile, 2, 4)
	rock := add(s, KindAsteroid, 2, 4)

	s.CheckCollisions()

	if !contains(s, bullet) || !contains(s, rock) {
		t.Error("asteroids are not destructible by projectiles")
	}
}

func TestCollisionProjectileHitsAllEnemiesOnCell(t *testing.T) {
	s, _, _ := newTestState()
	bullet := add(s, KindProjectile, 1, 1)
	first := add(s, KindEnemy, 1, 1)
	second := add(s, KindEnemy, 1, 1)

	s.CheckCollisions()

	if contains(s, bullet) || contains(s, first) || contains(s, second) {
		t.Error("every enemy on the cell should be destroyed with the projectile")
	}
}

func TestCollisionCraftHazards(t *testing.T) {
	tests := []struct {
		name   string
		kinds  []Kind
		health int
		logs   []string
	}{
		{"asteroid", []Kind{KindAsteroid}, 90, []string{"Hit by asteroid! Health reduced by 10."}},
		{"enemy", []Kind{KindEnemy}, 80, []string{"Hit by enemy! Health reduced by 20."}},
		{"both at once", []Kind{KindAsteroid, KindEnemy}, 70, []string{
			"Hit by asteroid! Health reduced by 10.",
			"Hit by enemy! Health reduced by 20.",
		}},
		{"two asteroids", []Kind{KindAsteroid, KindAsteroid}, 80, nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s, _, logger := newTestState()
			for _, k := range tc.kinds {
				add(s, k, 5, 10)
			}

			s.CheckCollisions()

			if s.Craft().Health() != tc.health {
				t.Errorf("health = %d, expected %d", s.Craft().Health(), tc.health)
			}
			if got := len(s.Entities()); got != 1 {
				t.Errorf("entities = %d, expected only the craft", got)
			}
			for _, line := range tc.logs {
				if !logger.has(line) {
					t.Errorf("missing log %q in %v", line, logger.lines)
				}
			}
		})
	}
}

func TestCollisionCraftDestroyedStaysInGame(t *testing.T) {
	s, _, _ := newTestState()
	s.Craft().TakeDamage(95)
	add(s, KindEnemy, 5, 10)

	s.CheckCollisions()

	if s.Craft() == nil {
		t.Fatal("craft should remain after reaching zero health")
	}
	if s.Craft().Health() != 0 || !s.Craft().Destroyed() {
		t.Errorf("health = %d, expected 0", s.Craft().Health())
	}
}

func TestCollisionCollectibles(t *testing.T) {
	t.Run("health pack", func(t *testing.T) {
		s, _, logger := newTestState()
		s.Craft().TakeDamage(50)
		add(s, KindHealthPack, 5, 10)

		s.CheckCollisions()

		if s.Craft().Health() != 70 {
			t.Errorf("health = %d, expected 70", s.Craft().Health())
		}
		if s.Count(KindHealthPack) != 0 {
			t.Error("health pack should be consumed")
		}
		if !logger.has("Health restored by 20!") || !logger.has("Power-up collected: HealthPack") {
			t.Errorf("missing logs in %v", logger.lines)
		}
	})

	t.Run("shield pack", func(t *testing.T) {
		s, _, logger := newTestState()
		add(s, KindShieldPack, 5, 10)

		s.CheckCollisions()

		if s.Craft().Score() != 50 {
			t.Errorf("score = %d, expected 50", s.Craft().Score())
		}
		if s.Count(KindShieldPack) != 0 {
			t.Error("shield pack should be consumed")
		}
		if !logger.has("Shield activated! Score increased by 50.") {
			t.Errorf("missing log in %v", logger.lines)
		}
	})

	t.Run("health pack at full health", func(t *testing.T) {
		s, _, _ := newTestState()
		add(s, KindHealthPack, 5, 10)

		s.CheckCollisions()

		if s.Craft().Health() != 100 {
			t.Errorf("health = %d, expected 100", s.Craft().Health())
		}
	})
}

func TestCollisionsIdempotent(t *testing.T) {
	s, _, _ := newTestState()
	add(s, KindShieldPack, 5, 10)
	add(s, KindAsteroid, 5, 10)
	add(s, KindProjectile, 3, 3)
	add(s, KindEnemy, 3, 3)
	add(s, KindAsteroid, 8, 8)

	s.CheckCollisions()
	health, score, count := s.Craft().Health(), s.Craft().Score(), len(s.Entities())

	s.CheckCollisions()

	if s.Craft().Health() != health || s.Craft().Score() != score || len(s.Entities()) != count {
		t.Error("second CheckCollisions should change nothing")
	}
	if count != 2 {
		t.Errorf("entities = %d, expected craft and the far asteroid", count)
	}
}

func TestLevelUp(t *testing.T) {
	s, _, logger := newTestState()
	place(s, 3, 4)
	s.Craft().AddScore(100)

	if !s.LevelUp() {
		t.Fatal("LevelUp() should advance at score 100")
	}
	if s.Level() != 2 || s.SpawnRate() != 7 {
		t.Errorf("level %d rate %d, expected 2 and 7", s.Level(), s.SpawnRate())
	}
	if !logger.has("Level Up! Welcome to Level 2. Spawn rate increased to 7%.") {
		t.Errorf("missing level log in %v", logger.lines)
	}

	if s.LevelUp() {
		t.Error("LevelUp() should not advance again at score 100")
	}
	if s.Level() != 2 || s.SpawnRate() != 7 {
		t.Errorf("level %d rate %d after second call", s.Level(), s.SpawnRate())
	}
}

func TestLevelUpOneLevelPerCall(t *testing.T) {
	s, _, _ := newTestState()
	s.Craft().AddScore(350)

	wantLevels := []int{2, 3, 4, 4}
	for i, want := range wantLevels {
		s.LevelUp()
		if s.Level() != want {
			t.Fatalf("call %d: level = %d, expected %d", i+1, s.Level(), want)
		}
	}
	if s.SpawnRate() != 2+3*5 {
		t.Errorf("spawn rate = %d, expected 17", s.SpawnRate())
	}
}

func TestFireBullet(t *testing.T) {
	s, _, logger := newTestState()
	place(s, 7, 13)
	before := len(s.Entities())

	bullet := s.FireBullet()

	if bullet == nil {
		t.Fatal("FireBullet() returned nil")
	}
	if len(s.Entities()) != before+1 || s.Count(KindProjectile) != 1 {
		t.Errorf("expected exactly one new projectile")
	}
	if bullet.X() != 7 || bullet.Y() != 13 {
		t.Errorf("bullet at (%d, %d), expected (7, 13)", bullet.X(), bullet.Y())
	}
	if !logger.has("Bullet fired!") {
		t.Errorf("missing log in %v", logger.lines)
	}
}

func TestFireBulletWithoutCraft(t *testing.T) {
	s, _, logger := newTestState()
	s.removeIf(func(e *Entity) bool { return e.Kind() == KindCraft })

	if s.Craft() != nil {
		t.Fatal("craft should be gone")
	}
	if s.FireBullet() != nil {
		t.Error("FireBullet() without craft should return nil")
	}
	if len(s.Entities()) != 0 {
		t.Error("no entity should be added")
	}
	if !logger.has("Cannot fire bullet: No ship found in the game.") {
		t.Errorf("missing log in %v", logger.lines)
	}
}

func TestNoEntityBelowFieldAfterUpdate(t *testing.T) {
	cfg := newTestConfig()
	cfg.Spawn.StartRate = 60
	s := NewState(cfg, NewSource(7), nil)

	for tick := 1; tick <= 2000; tick++ {
		s.UpdateGame(tick)
		for _, e := range s.Entities() {
			if e.Y() > cfg.Field.Height {
				t.Fatalf("tick %d: %v at y=%d", tick, e.Kind(), e.Y())
			}
		}
		s.CheckCollisions()
		s.SpawnObjects()
		if s.Craft() != nil && (s.Craft().Health() < 0 || s.Craft().Health() > 100) {
			t.Fatalf("tick %d: health %d out of range", tick, s.Craft().Health())
		}
	}
}
