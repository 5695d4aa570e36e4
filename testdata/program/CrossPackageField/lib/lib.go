package lib

type Tag struct{ val string }

func (t *Tag) UnmarshalText(text []byte) error {
	t.val = string(text)
	return nil
}

func (t Tag) String() string { return t.val }
