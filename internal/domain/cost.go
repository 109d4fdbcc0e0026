package domain

import (
	"fmt"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
)

// Cost guarda o valor monetário de uma transação. No banco ele é texto
// ("12.50"); depois do estágio de conversão numérica ele chega como double e
// é respondido como número. Um texto que não converte vira null.
type Cost struct {
	Text    string
	Numeric *float64
	Null    bool
}

// TextCost cria um Cost na forma persistida
func TextCost(text string) Cost {
	return Cost{Text: text}
}

// NumericCost cria um Cost já convertido
func NumericCost(value float64) Cost {
	return Cost{Numeric: &value}
}

// NullCost representa o null gravado ou produzido pela conversão
func NullCost() Cost {
	return Cost{Null: true}
}

// IsNumeric indica se o valor veio convertido pelo pipeline
func (c Cost) IsNumeric() bool {
	return c.Numeric != nil
}

// Decimal interpreta o custo como número
func (c Cost) Decimal() (decimal.Decimal, error) {
	if c.Numeric != nil {
		return decimal.NewFromFloat(*c.Numeric), nil
	}
	return decimal.NewFromString(strings.TrimSpace(c.Text))
}

func (c Cost) String() string {
	if c.Numeric != nil {
		return strconv.FormatFloat(*c.Numeric, 'f', -1, 64)
	}
	return c.Text
}

// MarshalBSONValue grava texto ou double conforme a representação atual
func (c Cost) MarshalBSONValue() (bsontype.Type, []byte, error) {
	if c.Numeric != nil {
		return bson.MarshalValue(*c.Numeric)
	}
	if c.Null {
		return bson.TypeNull, nil, nil
	}
	return bson.MarshalValue(c.Text)
}

// UnmarshalBSONValue aceita o texto persistido e os tipos numéricos que o
// estágio de conversão pode produzir
func (c *Cost) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}

	switch t {
	case bson.TypeString:
		*c = TextCost(raw.StringValue())
	case bson.TypeDouble:
		*c = NumericCost(raw.Double())
	case bson.TypeInt32:
		*c = NumericCost(float64(raw.Int32()))
	case bson.TypeInt64:
		*c = NumericCost(float64(raw.Int64()))
	case bson.TypeNull, bson.TypeUndefined:
		*c = NullCost()
	default:
		return fmt.Errorf("cost: unsupported bson type %s", t)
	}

	return nil
}

func (c Cost) MarshalJSON() ([]byte, error) {
	if c.Numeric != nil {
		return jsoniter.Marshal(*c.Numeric)
	}
	if c.Null {
		return []byte("null"), nil
	}
	return jsoniter.Marshal(c.Text)
}

func (c *Cost) UnmarshalJSON(data []byte) error {
	trimmed := strings.TrimSpace(string(data))
	if trimmed == "null" {
		*c = NullCost()
		return nil
	}

	if strings.HasPrefix(trimmed, `"`) {
		var text string
		if err := jsoniter.Unmarshal(data, &text); err != nil {
			return err
		}
		*c = TextCost(text)
		return nil
	}

	value, err := strconv.ParseFloat(trimmed, 64)
	if err != nil {
		return fmt.Errorf("cost: invalid value %s", trimmed)
	}
	*c = NumericCost(value)
	return nil
}
