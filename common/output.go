package common

import (
	"encoding/json"
)

// used for output types that are not simple strings, such as listings
// a given format (text, json) is passed in, and the appropriate string is returned
func GetJsonStringFromTemplate(template interface{}) string {
	jsonOutput, err := json.Marshal(template)
	PanicIfErr(err)

	return string(jsonOutput)
}
