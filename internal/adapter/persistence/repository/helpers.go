package repository

import (
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// rawFromItem converts a DynamoDB item to the raw map form consumed by the
// normalize package. Legacy-imported items keep whatever attribute shapes the
// migration produced; nothing is reinterpreted here.
func rawFromItem(item map[string]types.AttributeValue) (map[string]any, error) {
	var raw map[string]any
	if err := attributevalue.UnmarshalMap(item, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// buildSetExpression turns a sanitized payload into an UpdateItem SET
// expression over its top-level keys. Nested groups are replaced wholesale;
// partial-leaf merging happens before the payload is built.
func buildSetExpression(payload map[string]any) (string, map[string]types.AttributeValue, map[string]string, error) {
	expr := ""
	values := make(map[string]types.AttributeValue, len(payload))
	names := make(map[string]string, len(payload))

	i := 0
	for key, val := range payload {
		av, err := attributevalue.Marshal(val)
		if err != nil {
			return "", nil, nil, err
		}
		nameRef := fmt.Sprintf("#k%d", i)
		valueRef := fmt.Sprintf(":v%d", i)
		if expr == "" {
			expr = "SET " + nameRef + " = " + valueRef
		} else {
			expr += ", " + nameRef + " = " + valueRef
		}
		names[nameRef] = key
		values[valueRef] = av
		i++
	}
	return expr, values, names, nil
}

func mergeNames(a, b map[string]string) map[string]string {
	if len(a) == 0 {
		return b
	}
	if len(b) == 0 {
		return a
	}
	out := make(map[string]string, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, v := range b {
		out[k] = v
	}
	return out
}
