package scene

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTree_ActiveSlideQueries(t *testing.T) {
	tree := New(3)
	if _, err := tree.ActiveSlide(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("ActiveSlide on fresh tree err = %v, want ErrNotFound", err)
	}

	tree.Activate(1, "zoomIn")
	got, err := tree.ActiveSlide()
	if err != nil {
		t.Fatalf("ActiveSlide returned error: %v", err)
	}
	if got != 1 {
		t.Fatalf("ActiveSlide = %d, want 1", got)
	}

	tree.AddClass(2, ClassActive)
	if _, err := tree.ActiveSlide(); !errors.Is(err, ErrAmbiguous) {
		t.Fatalf("ActiveSlide with two active err = %v, want ErrAmbiguous", err)
	}
}

func TestTree_ActivateClearsOtherActiveMarkers(t *testing.T) {
	tree := New(4)
	tree.AddClass(0, ClassActive, "fadeOutRightBig")
	tree.AddClass(3, ClassActive)

	tree.Activate(2, "fadeInLeftBig")

	if diff := cmp.Diff([]int{2}, tree.WithClass(ClassActive)); diff != "" {
		t.Fatalf("active slides (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"fadeOutRightBig"}, tree.Classes(0)); diff != "" {
		t.Fatalf("slide 0 classes (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{ClassActive, "fadeInLeftBig"}, tree.Classes(2)); diff != "" {
		t.Fatalf("slide 2 classes (-want +got):\n%s", diff)
	}
}

func TestTree_IgnoresUnknownOrdinals(t *testing.T) {
	tree := New(1)
	tree.AddClass(-1, "x")
	tree.AddClass(5, "x")
	tree.RemoveClass(9, "x")
	tree.Activate(7)

	if tree.HasClass(5, "x") {
		t.Fatalf("HasClass on unknown ordinal = true, want false")
	}
	if got := tree.Classes(5); got != nil {
		t.Fatalf("Classes(5) = %v, want nil", got)
	}
	if got := tree.WithClass(ClassActive); len(got) != 0 {
		t.Fatalf("WithClass(active) = %v, want empty", got)
	}
}

func TestTree_ControlTitles(t *testing.T) {
	tree := New(1)
	if got := tree.ControlTitle("play-pause"); got != "" {
		t.Fatalf("ControlTitle unset = %q, want empty", got)
	}
	tree.SetControlTitle("play-pause", "Stop slideshow")
	if got := tree.ControlTitle("play-pause"); got != "Stop slideshow" {
		t.Fatalf("ControlTitle = %q, want %q", got, "Stop slideshow")
	}
}
