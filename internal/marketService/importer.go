package market

import (
	"auction-storefront/internal/auctionerrors"
	"auction-storefront/internal/models"
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/mail"
	"strconv"
	"strings"
)

var requiredProductHeaders = []string{"Type", "model", "sn", "desc", "st_price"}

// csvRow resolves columns by case-insensitive header name
type csvRow struct {
	header map[string]int
	fields []string
}

func (r csvRow) value(name string) string {
	idx, ok := r.header[strings.ToLower(name)]
	if !ok || idx >= len(r.fields) {
		return ""
	}
	return strings.TrimSpace(r.fields[idx])
}

func (r csvRow) required(name string) (string, error) {
	v := r.value(name)
	if v == "" {
		return "", fmt.Errorf("Field '%s' is required", name)
	}
	return v, nil
}

// ImportProducts upserts products by serial from a CSV with the headers
// Type, model, sn, desc, st_price. Row failures are collected, not fatal;
// a missing header rejects the whole file.
func (s *MarketService) ImportProducts(r io.Reader) (models.ImportResult, error) {
	result := models.ImportResult{Errors: []string{}}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headerFields, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return result, fmt.Errorf("service: %w - file is empty", auctionerrors.ErrInvalidCSV)
	}
	if err != nil {
		return result, fmt.Errorf("service: %w - %v", auctionerrors.ErrInvalidCSV, err)
	}

	header := make(map[string]int, len(headerFields))
	for i, h := range headerFields {
		header[strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\uFEFF")))] = i
	}
	for _, h := range requiredProductHeaders {
		if _, ok := header[strings.ToLower(h)]; !ok {
			return result, fmt.Errorf("service: %w - Missing required CSV header: %s", auctionerrors.ErrInvalidCSV, h)
		}
	}

	for rowNum := 1; ; rowNum++ {
		fields, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		result.Processed++
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
			continue
		}

		created, err := s.importProductRow(csvRow{header: header, fields: fields})
		switch {
		case err != nil:
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", rowNum, err))
		case created:
			result.Created++
		default:
			result.Updated++
		}
	}
	return result, nil
}

func (s *MarketService) importProductRow(row csvRow) (bool, error) {
	serial, err := row.required("sn")
	if err != nil {
		return false, err
	}
	modelName, err := row.required("model")
	if err != nil {
		return false, err
	}
	typeName, err := row.required("Type")
	if err != nil {
		return false, err
	}
	rawPrice, err := row.required("st_price")
	if err != nil {
		return false, err
	}
	price, err := strconv.ParseFloat(rawPrice, 64)
	if err != nil || price < 0 {
		return false, errors.New("Field 'st_price' must be a valid decimal number")
	}

	productType := s.repo.ResolveProductType(typeName)

	product, err := s.repo.GetProductBySerial(serial)
	isNew := errors.Is(err, auctionerrors.ErrNotFound)
	if err != nil && !isNew {
		return false, err
	}

	// an update never reopens a closed auction
	product.Serial = serial
	product.Model = modelName
	product.Description = row.value("desc")
	product.ProductType = &productType
	product.StartingPrice = price

	if _, err := s.repo.SaveProduct(product); err != nil {
		return false, err
	}
	return isNew, nil
}

// ImportUsers creates one ROLE_USER account per email line. Blank lines and
// '#' comments are ignored and a leading "email" header is skipped. Existing
// emails are skipped, invalid ones fail.
func (s *MarketService) ImportUsers(r io.Reader) (models.UserImportResult, error) {
	result := models.UserImportResult{Errors: []string{}}

	scanner := bufio.NewScanner(r)
	for lineNum := 1; scanner.Scan(); lineNum++ {
		email := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\uFEFF"))
		if email == "" || strings.HasPrefix(email, "#") {
			continue
		}
		if lineNum == 1 && strings.EqualFold(email, "email") {
			continue
		}

		result.Processed++
		if !isValidEmail(email) {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: invalid email format '%s'", lineNum, email))
			continue
		}

		password, err := generatePassword()
		if err != nil {
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", lineNum, err))
			continue
		}
		if _, err := s.CreateUser(email, password, RoleUser, true); err != nil {
			if errors.Is(err, auctionerrors.ErrUserExists) {
				result.Skipped++
				result.Errors = append(result.Errors, fmt.Sprintf("Row %d: email already exists '%s'", lineNum, email))
				continue
			}
			result.Failed++
			result.Errors = append(result.Errors, fmt.Sprintf("Row %d: %v", lineNum, err))
			continue
		}
		result.Created++
		s.credentials(email, password)
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("service: %w - %v", auctionerrors.ErrInvalidCSV, err)
	}
	return result, nil
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)
	return err == nil && addr.Address == email && strings.Contains(email[strings.LastIndex(email, "@")+1:], ".")
}
