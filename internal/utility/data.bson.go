package utility

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
)

// ToMap chuyển đổi interface thành map thông qua bson marshal/unmarshal.
func ToMap(s interface{}) (map[string]interface{}, error) {
	var stringInterfaceMap map[string]interface{}
	itr, err := bson.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("bson marshal failed: %w", err)
	}
	err = bson.Unmarshal(itr, &stringInterfaceMap)
	if err != nil {
		return nil, fmt.Errorf("bson unmarshal failed: %w", err)
	}
	return stringInterfaceMap, err
}
