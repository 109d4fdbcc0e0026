package memory

import (
	"bytes"
	"cmp"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Ordem entre tipos BSON usada pelo MongoDB na ordenação:
// null < números < strings < documentos < arrays < binários < ObjectId < bool < datas
const (
	rankNull = iota + 1
	rankNumber
	rankString
	rankDocument
	rankArray
	rankBinary
	rankObjectID
	rankBool
	rankDate
	rankOther
)

func typeRank(v any) int {
	switch v.(type) {
	case nil, primitive.Null, primitive.Undefined:
		return rankNull
	case int, int32, int64, float64:
		return rankNumber
	case string:
		return rankString
	case bson.M, bson.D:
		return rankDocument
	case primitive.A, []any:
		return rankArray
	case primitive.Binary:
		return rankBinary
	case primitive.ObjectID:
		return rankObjectID
	case bool:
		return rankBool
	case primitive.DateTime, time.Time:
		return rankDate
	}
	return rankOther
}

// compareValues devolve -1, 0 ou 1. Campos ausentes chegam como nil e
// ordenam junto com null.
func compareValues(a, b any) int {
	ra, rb := typeRank(a), typeRank(b)
	if ra != rb {
		return cmp.Compare(ra, rb)
	}

	switch ra {
	case rankNumber:
		return cmp.Compare(toFloat(a), toFloat(b))
	case rankString:
		return strings.Compare(a.(string), b.(string))
	case rankObjectID:
		ida, idb := a.(primitive.ObjectID), b.(primitive.ObjectID)
		return bytes.Compare(ida[:], idb[:])
	case rankBool:
		return cmp.Compare(boolToInt(a.(bool)), boolToInt(b.(bool)))
	case rankDate:
		return cmp.Compare(toMillis(a), toMillis(b))
	}

	return 0
}

// equalValues só compara escalares; documentos e arrays nunca são iguais aqui
func equalValues(a, b any) bool {
	switch typeRank(a) {
	case rankDocument, rankArray, rankBinary, rankOther:
		return false
	}
	return compareValues(a, b) == 0
}

func toFloat(v any) float64 {
	switch n := v.(type) {
	case int:
		return float64(n)
	case int32:
		return float64(n)
	case int64:
		return float64(n)
	case float64:
		return n
	}
	return 0
}

func toMillis(v any) int64 {
	switch t := v.(type) {
	case primitive.DateTime:
		return int64(t)
	case time.Time:
		return t.UnixMilli()
	}
	return 0
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
