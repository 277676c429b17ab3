package scenes

import (
	"testing"

	cfg "github.com/automoto/rockclimber/config"
)

type recordingChanger struct {
	scenes []interface{}
}

func (r *recordingChanger) ChangeScene(scene interface{}) {
	r.scenes = append(r.scenes, scene)
}

func TestClimbSceneCloseReleasesTheWorld(t *testing.T) {
	changer := &recordingChanger{}
	cs := NewClimbScene(changer)
	cs.configure()
	if cs.ecs == nil {
		t.Fatalf("scene did not build a world; changed to %v", changer.scenes)
	}
	world := cs.ecs.World
	if world.Len() == 0 {
		t.Fatal("mounted world is empty")
	}

	if err := cs.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if n := world.Len(); n != 0 {
		t.Fatalf("%d entities left after Close", n)
	}
	if err := cs.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestClimbSceneFallsBackToNotice(t *testing.T) {
	saved := cfg.Climb
	defer func() { cfg.Climb = saved }()
	cfg.Climb.BufferCount = 0

	changer := &recordingChanger{}
	cs := NewClimbScene(changer)
	cs.configure()

	if len(changer.scenes) != 1 {
		t.Fatalf("scene changes = %d, want 1", len(changer.scenes))
	}
	if _, ok := changer.scenes[0].(*NoticeScene); !ok {
		t.Fatalf("changed to %T, want *NoticeScene", changer.scenes[0])
	}
	if cs.ecs != nil {
		t.Fatal("world built without a session")
	}
	if err := cs.Close(); err != nil {
		t.Fatalf("Close after the notice fallback: %v", err)
	}
}
