package walldata

import (
	"fmt"
	"os"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/automoto/rockclimber/climb"
)

type seedObj struct {
	x, y  float64
	index int
}

func tmx(objs ...seedObj) string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="15" height="20" tilewidth="24" tileheight="24" infinite="0">
 <objectgroup id="1" name="SeedHolds">
`)
	for i, o := range objs {
		fmt.Fprintf(&b, `  <object id="%d" x="%v" y="%v">
   <properties>
    <property name="index" type="int" value="%d"/>
   </properties>
   <point/>
  </object>
`, i+1, o.x, o.y, o.index)
	}
	b.WriteString(" </objectgroup>\n</map>\n")
	return b.String()
}

func mapFS(body string) fstest.MapFS {
	return fstest.MapFS{"walls/test.tmx": &fstest.MapFile{Data: []byte(body)}}
}

func TestLoadOrdersSeedByIndex(t *testing.T) {
	fsys := mapFS(tmx(
		seedObj{130, 210, 2},
		seedObj{100, 390, 0},
		seedObj{220, 300, 1},
	))

	data, err := Load(fsys, "walls/test.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if data.Name != "test" {
		t.Fatalf("Name = %q, want test", data.Name)
	}
	if data.MapWidth != 360 || data.MapHeight != 480 {
		t.Fatalf("map size = %dx%d, want 360x480", data.MapWidth, data.MapHeight)
	}
	want := []climb.Vec2{climb.Pt(100, 390), climb.Pt(220, 300), climb.Pt(130, 210)}
	got := data.SeedPoints()
	if len(got) != len(want) {
		t.Fatalf("seed = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("seed[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestLoadRejectsBadSeeds(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no_objects", tmx()},
		{"gap_in_indices", tmx(seedObj{100, 390, 0}, seedObj{220, 300, 2})},
		{"duplicate_index", tmx(seedObj{100, 390, 0}, seedObj{220, 300, 0})},
		{"outside_map", tmx(seedObj{100, 390, 0}, seedObj{900, 300, 1})},
		{"not_xml", "this is not a map"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Load(mapFS(tt.body), "walls/test.tmx"); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(fstest.MapFS{}, "walls/nope.tmx"); err == nil {
		t.Fatal("expected an error for a missing map")
	}
}

func TestShippedStartWallMatchesDefaultSeed(t *testing.T) {
	data, err := Load(os.DirFS("../../assets/walls"), "start.tmx")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	tun := climb.DefaultTuning()
	if data.MapWidth != int(tun.Width) || data.MapHeight != int(tun.Height) {
		t.Fatalf("start wall is %dx%d, want %vx%v", data.MapWidth, data.MapHeight, tun.Width, tun.Height)
	}
	want := tun.DefaultSeed()
	got := data.SeedPoints()
	if len(got) != len(want) {
		t.Fatalf("start wall seeds %d holds, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("seed[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}
