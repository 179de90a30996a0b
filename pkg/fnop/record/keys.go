package record

import "github.com/samber/mo"

func ID(r *Record) int       { return r.ID }
func Name(r *Record) string  { return r.Name }
func Phone(r *Record) string { return r.Phone }

// Level returns the record level, zero when absent, so ordering by Level ties
// an absent level with zero. Use OptionalLevel with compare.ByOptionKey to keep
// them apart.
func Level(r *Record) int { return r.Level.OrEmpty() }

func OptionalLevel(r *Record) mo.Option[int] { return r.Level }
