package selector

import "testing"

func TestComposeFilter_EmptyWithBaseline(t *testing.T) {
	got := ComposeFilter(TagSet{}, true)
	if got != BaselineTag {
		t.Errorf("ComposeFilter(empty, baseline) = %q, want %q", got, BaselineTag)
	}
}

func TestComposeFilter_EmptyNoBaseline(t *testing.T) {
	// Never an empty expression: degrades to the baseline tag.
	got := ComposeFilter(TagSet{}, false)
	if got != BaselineTag {
		t.Errorf("ComposeFilter(empty, no baseline) = %q, want %q", got, BaselineTag)
	}
}

func TestComposeFilter_SingleTagNoBaseline(t *testing.T) {
	got := ComposeFilter(TagSet{"@x": {}}, false)
	if got != "@x" {
		t.Errorf("ComposeFilter({@x}, no baseline) = %q, want %q", got, "@x")
	}
}

func TestComposeFilter_Alternation(t *testing.T) {
	tags := TagSet{"@auth": {}, "@api": {}}
	got := ComposeFilter(tags, true)
	want := "(@api|@auth|@smoke)"
	if got != want {
		t.Errorf("ComposeFilter = %q, want %q", got, want)
	}
}

func TestComposeFilter_BaselineNotDuplicated(t *testing.T) {
	tags := TagSet{BaselineTag: {}, "@api": {}}
	got := ComposeFilter(tags, true)
	want := "(@api|@smoke)"
	if got != want {
		t.Errorf("ComposeFilter = %q, want %q", got, want)
	}
}

func TestComposeFilter_Deterministic(t *testing.T) {
	tags := TagSet{"@c": {}, "@a": {}, "@b": {}}
	first := ComposeFilter(tags, true)
	for i := 0; i < 20; i++ {
		if got := ComposeFilter(tags, true); got != first {
			t.Fatalf("ComposeFilter not deterministic: %q vs %q", got, first)
		}
	}
}

func TestComposeFilter_Idempotent(t *testing.T) {
	// Re-composing the tag set of an already-composed filter yields the
	// same expression once the baseline has been absorbed.
	tags := TagSet{"@auth": {}, "@api": {}}
	first := ComposeFilter(tags, true)

	again := TagSet{"@auth": {}, "@api": {}, BaselineTag: {}}
	second := ComposeFilter(again, true)

	if first != second {
		t.Errorf("ComposeFilter not idempotent: %q vs %q", first, second)
	}
}
