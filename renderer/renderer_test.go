package renderer

import (
	"bytes"
	"strings"
	"testing"
)

// TestName ensures we can lookup a driver by name
func TestName(t *testing.T) {

	valid := []string{"ansi", "logger", "null", "termbox"}

	for _, nm := range valid {

		d, e := New(nm, 2, 16)
		if e != nil {
			t.Fatalf("failed to lookup driver by name %s:%s", nm, e)
		}
		if d.GetName() != nm {
			t.Fatalf("%s != %s", d.GetName(), nm)
		}
		if d.Lines() != 2 || d.Columns() != 16 {
			t.Fatalf("%s has the wrong shape %dx%d", nm, d.Lines(), d.Columns())
		}
	}

	// Case doesn't matter
	if _, err := New("ANSI", 1, 8); err != nil {
		t.Fatalf("failed to lookup driver with upper-case name")
	}

	// Lookup a driver that wont exist
	_, err := New("foo.bar.ba", 1, 8)
	if err == nil {
		t.Fatalf("we got a driver that shouldn't exist")
	}
}

// TestGetDrivers ensures the internal drivers are hidden
func TestGetDrivers(t *testing.T) {
	for _, nm := range GetDrivers() {
		if nm == "null" || nm == "logger" {
			t.Fatalf("internal driver %s was listed", nm)
		}
	}
	found := false
	for _, nm := range GetDrivers() {
		if nm == "ansi" {
			found = true
		}
	}
	if !found {
		t.Fatalf("ansi driver not listed")
	}
}

// TestCanvas checks the bounds of the pixel store
func TestCanvas(t *testing.T) {
	c := NewCanvas(2, 3)
	if c.Width() != 15 || c.Height() != 16 {
		t.Fatalf("wrong size %dx%d", c.Width(), c.Height())
	}

	c.SetPixel(14, 15, true)
	if !c.Pixel(14, 15) {
		t.Fatalf("pixel not set")
	}

	// out of range is ignored, and reads as off
	c.SetPixel(15, 0, true)
	c.SetPixel(-1, 0, true)
	if c.Pixel(15, 0) || c.Pixel(-1, 0) || c.Pixel(0, 16) {
		t.Fatalf("out of range pixel was lit")
	}

	c.ChangeContrast(0xFF)
	if c.Contrast() != 0x3F {
		t.Fatalf("contrast not masked")
	}

	empty := NewCanvas(0, 0)
	if empty.Pixel(0, 0) {
		t.Fatalf("empty canvas has pixels")
	}
}

// TestLogger ensures the recorder keeps everything it is sent
func TestLogger(t *testing.T) {
	d, err := New("logger", 1, 8)
	if err != nil {
		t.Fatalf("failed to create logger %s", err)
	}

	d.TurnDisplayOn()
	d.SetPixel(1, 2, true)
	d.ChangeContrast(40)
	d.TurnDisplayOff()

	r, ok := d.(Recorder)
	if !ok {
		t.Fatalf("logger is not a recorder")
	}
	ev := r.Events()
	if len(ev) != 4 {
		t.Fatalf("wrong number of events %d", len(ev))
	}
	want := []Event{
		{Kind: EventDisplayOn},
		{Kind: EventPixel, X: 1, Y: 2, On: true},
		{Kind: EventContrast, Contrast: 40},
		{Kind: EventDisplayOff},
	}
	for i := range want {
		if ev[i] != want[i] {
			t.Fatalf("event %d: got %v, want %v", i, ev[i], want[i])
		}
	}

	lr := d.(*LoggingRenderer)
	if !lr.Pixel(1, 2) {
		t.Fatalf("canvas not updated")
	}
	out := lr.GetOutput()
	if out != "display-on\npixel(1,2)=true\ncontrast=40\ndisplay-off\n" {
		t.Fatalf("unexpected output %q", out)
	}

	r.Reset()
	if len(r.Events()) != 0 {
		t.Fatalf("reset didn't work")
	}
	if !lr.Pixel(1, 2) {
		t.Fatalf("reset cleared the canvas")
	}
}

// TestNull ensures the null driver discards pixels
func TestNull(t *testing.T) {
	d, _ := New("null", 1, 8)
	d.SetPixel(0, 0, true)
	d.TurnDisplayOn()
	if d.(*NullRenderer).Pixel(0, 0) {
		t.Fatalf("null driver stored a pixel")
	}
}

// TestAnsi ensures that the ansi driver writes escape sequences
func TestAnsi(t *testing.T) {
	d, _ := New("ansi", 1, 2)
	ad := d.(*AnsiRenderer)

	tmp := new(bytes.Buffer)
	ad.SetWriter(tmp)

	if err := ad.Setup(); err != nil {
		t.Fatalf("setup failed %s", err)
	}
	if !strings.Contains(tmp.String(), "\x1b[2J") {
		t.Fatalf("screen not cleared")
	}

	// Nothing is drawn while the display is off
	tmp.Reset()
	ad.SetPixel(5, 0, true)
	if tmp.Len() != 0 {
		t.Fatalf("output while display is off: %q", tmp.String())
	}

	// Turning on redraws everything, the second character is offset
	// by the gap column
	ad.ChangeContrast(32)
	ad.TurnDisplayOn()
	if !strings.Contains(tmp.String(), "\x1b[1;7H\x1b[0m█") {
		t.Fatalf("lit pixel not drawn: %q", tmp.String())
	}

	tmp.Reset()
	ad.ChangeContrast(4)
	if !strings.Contains(tmp.String(), "\x1b[2m") {
		t.Fatalf("low contrast not dimmed")
	}

	tmp.Reset()
	ad.TurnDisplayOff()
	if tmp.String() != "\x1b[2J" {
		t.Fatalf("unexpected output %q", tmp.String())
	}

	tmp.Reset()
	if err := ad.TearDown(); err != nil {
		t.Fatalf("teardown failed %s", err)
	}
	if !strings.Contains(tmp.String(), "\x1b[?25h") {
		t.Fatalf("cursor not restored")
	}
}
