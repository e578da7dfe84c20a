package utils

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/gin-gonic/gin"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

var (
	emailRegex = regexp.MustCompile(`^[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(?:\.[a-zA-Z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?\.)+[a-zA-Z0-9](?:[a-zA-Z0-9-]*[a-zA-Z0-9])?$`)

	// Indonesian numbers: +62 / 62 / 0 followed by an 8-prefixed mobile or an area code.
	phoneRegexes = []*regexp.Regexp{
		regexp.MustCompile(`^\+628\d{7,11}$`),
		regexp.MustCompile(`^628\d{7,11}$`),
		regexp.MustCompile(`^08\d{7,11}$`),
		regexp.MustCompile(`^0[2-7]\d{6,10}$`),
	}
)

func ValidateEmail(email string) (bool, error) {
	if !emailRegex.MatchString(email) {
		return false, fmt.Errorf("email format incorrect")
	}
	return true, nil
}

func ValidatePhone(phone string) (bool, error) {
	for _, re := range phoneRegexes {
		if re.MatchString(phone) {
			return true, nil
		}
	}
	return false, fmt.Errorf("phone format incorrect")
}

// ValidateCoordinates checks a latitude/longitude pair against WGS84 bounds.
func ValidateCoordinates(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return ValidationError{Field: "latitude", Message: "must be between -90 and 90"}
	}
	if lon < -180 || lon > 180 {
		return ValidationError{Field: "longitude", Message: "must be between -180 and 180"}
	}
	return nil
}

func GetQueryParamAsInt(c *gin.Context, paramName string, defaultValue int) (int, error) {
	paramValue := c.Query(paramName)
	if paramValue == "" {
		return defaultValue, nil
	}

	intValue, err := strconv.Atoi(paramValue)
	if err != nil {
		return 0, fmt.Errorf("invalid %s", paramName)
	}

	if intValue < 0 {
		return 0, fmt.Errorf("invalid %s", paramName)
	}

	return intValue, nil
}

// GetParamAsInt64 parses a positive integer path parameter such as :id.
func GetParamAsInt64(c *gin.Context, paramName string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(paramName), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s", paramName)
	}
	return id, nil
}
