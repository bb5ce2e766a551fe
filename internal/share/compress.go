package share

import (
	"encoding/base64"
	"errors"
	"strconv"
	"strings"

	"github.com/claude/vincera/internal/models"
)

// Compact string codec for splits and days, used for text-sized sharing
// (links, QR codes). Layout, base64-encoded:
//
//	s<name>|<description>|<day>/<day>...
//	d<name>|<description>|<color>|<wrapper>?<wrapper>...
//	wrapper:  <exercise>~<exercise>...
//	exercise: <listId>|<unit1>|<unit2>|<rpe>|<set>`<set>...
//	set:      <valueOne>|<valueTwo>|<type>
//
// Empty set values compress to 0, so a decoded set is always filled.
const (
	varSep      = "|"
	daySep      = "/"
	wrapperSep  = "?"
	exerciseSep = "~"
	setSep      = "`"
)

// Decode errors, one per entity level.
var (
	ErrBadString   = errors.New("malformed compressed string")
	ErrBadSplit    = errors.New("malformed compressed split")
	ErrBadDay      = errors.New("malformed compressed day")
	ErrBadExercise = errors.New("malformed compressed exercise")
	ErrBadSet      = errors.New("malformed compressed set")
)

// CompressSplit encodes a split into its compact string form.
func CompressSplit(split models.Split) string {
	days := make([]string, len(split.Days))
	for i, d := range split.Days {
		days[i] = compressDay(d)
	}
	raw := "s" + split.Name + varSep + split.Description + varSep + strings.Join(days, daySep)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// CompressDay encodes a single day into its compact string form.
func CompressDay(day models.Day) string {
	return base64.StdEncoding.EncodeToString([]byte("d" + compressDay(day)))
}

func compressDay(day models.Day) string {
	wrappers := make([]string, len(day.Exercises))
	for i, group := range day.Exercises {
		exs := make([]string, len(group))
		for j, e := range group {
			exs[j] = compressExercise(e)
		}
		wrappers[i] = strings.Join(exs, exerciseSep)
	}
	return day.Name + varSep + day.Description + varSep + day.Color + varSep +
		strings.Join(wrappers, wrapperSep)
}

func compressExercise(e models.Exercise) string {
	sets := make([]string, len(e.Sets))
	for i, s := range e.Sets {
		sets[i] = compressSet(s)
	}
	return e.ListID + varSep +
		e.UnitOne.Compressed() + varSep +
		e.UnitTwo.Compressed() + varSep +
		strconv.Itoa(e.RPE) + varSep +
		strings.Join(sets, setSep)
}

func compressSet(s models.Set) string {
	return formatValue(s.ValueOne) + varSep + formatValue(s.ValueTwo) + varSep + setTypeCode(s.Type)
}

func formatValue(v *float64) string {
	if v == nil {
		return "0"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func setTypeCode(t models.SetType) string {
	switch t {
	case models.SetMyo:
		return "m"
	case models.SetDrop:
		return "d"
	case models.SetWarmup:
		return "w"
	case models.SetCooldown:
		return "c"
	}
	return "n"
}

func setTypeFromCode(code string) (models.SetType, bool) {
	switch code {
	case "n":
		return models.SetNormal, true
	case "m":
		return models.SetMyo, true
	case "d":
		return models.SetDrop, true
	case "w":
		return models.SetWarmup, true
	case "c":
		return models.SetCooldown, true
	}
	return "", false
}

// DecompressSplit decodes a compact split string. Decoded entities get fresh
// ids, like an import.
func DecompressSplit(s string) (models.Split, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil || len(raw) == 0 || raw[0] != 's' {
		return models.Split{}, ErrBadString
	}
	return decompressSplit(string(raw[1:]))
}

// DecompressDay decodes a compact day string.
func DecompressDay(s string) (models.Day, error) {
	raw, err := base64.StdEncoding.DecodeString(s)
	if err != nil || len(raw) == 0 || raw[0] != 'd' {
		return models.Day{}, ErrBadString
	}
	return decompressDay(string(raw[1:]))
}

func decompressSplit(s string) (models.Split, error) {
	parts := strings.SplitN(s, varSep, 3)
	if len(parts) != 3 {
		return models.Split{}, ErrBadSplit
	}
	split := models.Split{
		ID:          models.NewID(),
		Name:        parts[0],
		Description: parts[1],
	}
	if parts[2] == "" {
		return split, nil
	}
	for _, ds := range strings.Split(parts[2], daySep) {
		day, err := decompressDay(ds)
		if err != nil {
			return models.Split{}, err
		}
		split.Days = append(split.Days, day)
	}
	return split, nil
}

func decompressDay(s string) (models.Day, error) {
	parts := strings.SplitN(s, varSep, 4)
	if len(parts) != 4 {
		return models.Day{}, ErrBadDay
	}
	day := models.Day{
		ID:          models.NewID(),
		Name:        parts[0],
		Description: parts[1],
		Color:       parts[2],
	}
	if parts[3] == "" {
		return day, nil
	}
	for _, ws := range strings.Split(parts[3], wrapperSep) {
		var group []models.Exercise
		for _, es := range strings.Split(ws, exerciseSep) {
			e, err := decompressExercise(es)
			if err != nil {
				return models.Day{}, err
			}
			group = append(group, e)
		}
		day.Exercises = append(day.Exercises, group)
	}
	return day, nil
}

func decompressExercise(s string) (models.Exercise, error) {
	parts := strings.SplitN(s, varSep, 5)
	if len(parts) != 5 {
		return models.Exercise{}, ErrBadExercise
	}
	unitOne, ok1 := models.UnitFromCompressed(parts[1])
	unitTwo, ok2 := models.UnitFromCompressed(parts[2])
	rpe, err := strconv.Atoi(parts[3])
	if !ok1 || !ok2 || err != nil {
		return models.Exercise{}, ErrBadExercise
	}
	e := models.Exercise{
		ID:      models.NewID(),
		ListID:  parts[0],
		RPE:     rpe,
		UnitOne: unitOne,
		UnitTwo: unitTwo,
	}
	// An exercise with no sets compresses to an empty trailing segment.
	if parts[4] == "" {
		return e, nil
	}
	for _, ss := range strings.Split(parts[4], setSep) {
		set, err := decompressSet(ss)
		if err != nil {
			return models.Exercise{}, err
		}
		e.Sets = append(e.Sets, set)
	}
	return e, nil
}

func decompressSet(s string) (models.Set, error) {
	parts := strings.Split(s, varSep)
	if len(parts) != 3 {
		return models.Set{}, ErrBadSet
	}
	one, err1 := strconv.ParseFloat(parts[0], 64)
	two, err2 := strconv.ParseFloat(parts[1], 64)
	typ, ok := setTypeFromCode(parts[2])
	if err1 != nil || err2 != nil || !ok {
		return models.Set{}, ErrBadSet
	}
	return models.Set{ID: models.NewID(), ValueOne: &one, ValueTwo: &two, Type: typ}, nil
}
