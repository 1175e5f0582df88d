package codec

import (
	"strconv"

	"github.com/slok/tasker/internal/clock"
	"github.com/slok/tasker/internal/model"
)

type field struct {
	key    string
	quoted bool
	get    func(t model.Task) string
	set    func(t *model.Task, v string) error
}

func (f field) encode(t model.Task) string {
	v := f.get(t)
	if f.quoted {
		return quote(v)
	}
	return v
}

func (f field) decode(t *model.Task, v string) error { return f.set(t, v) }

// fields is the ordered task schema, the order is the one used when encoding.
var fields = []field{
	{
		key: "id",
		get: func(t model.Task) string { return strconv.FormatUint(t.ID, 10) },
		set: func(t *model.Task, v string) error {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				return err
			}
			t.ID = id
			return nil
		},
	},
	{
		key:    "description",
		quoted: true,
		get:    func(t model.Task) string { return t.Description },
		set: func(t *model.Task, v string) error {
			t.Description = v
			return nil
		},
	},
	{
		key:    "status",
		quoted: true,
		get:    func(t model.Task) string { return t.Status.String() },
		set: func(t *model.Task, v string) error {
			s, err := model.ParseStatus(v)
			if err != nil {
				return err
			}
			t.Status = s
			return nil
		},
	},
	{
		key:    "createdAt",
		quoted: true,
		get:    func(t model.Task) string { return t.CreatedAt.String() },
		set:    func(t *model.Task, v string) error { return setTimestamp(&t.CreatedAt, v) },
	},
	{
		key:    "updatedAt",
		quoted: true,
		get:    func(t model.Task) string { return t.UpdatedAt.String() },
		set:    func(t *model.Task, v string) error { return setTimestamp(&t.UpdatedAt, v) },
	},
}

var fieldsByKey = func() map[string]field {
	m := make(map[string]field, len(fields))
	for _, f := range fields {
		m[f.key] = f
	}
	return m
}()

func setTimestamp(dst *clock.Timestamp, v string) error {
	ts, err := clock.Parse(v)
	if err != nil {
		return err
	}
	*dst = ts
	return nil
}
