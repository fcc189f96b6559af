package snippets

import (
	"database/sql"

	"github.com/dmitrijs2005/snippets/internal/models"
)

func scanKeywords(rows *sql.Rows) ([]string, error) {
	result := []string{}
	for rows.Next() {
		var keyword string
		if err := rows.Scan(&keyword); err != nil {
			return nil, err
		}
		result = append(result, keyword)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func scanCatalog(rows *sql.Rows) ([]models.CatalogItem, error) {
	result := []models.CatalogItem{}
	for rows.Next() {
		var item models.CatalogItem
		if err := rows.Scan(&item.Keyword, &item.Message); err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
