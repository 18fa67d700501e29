// Package alerts clasifica productos del catálogo en categorías de alerta
// (sin stock, stock bajo, próximos a vencer). Es un servicio de dominio puro:
// no persiste nada y se recalcula en cada consulta — el catálogo de una tienda
// pequeña cabe en memoria, así que no hace falta caché ni invalidación.
package alerts

import (
	"time"

	"github.com/solasiya/spazamanager/internal/domain/entity"
)

// DefaultExpiryWindowDays horizonte por defecto para "próximo a vencer".
const DefaultExpiryWindowDays = 7

// IsOutOfStock: cantidad exactamente cero.
func IsOutOfStock(p *entity.Product) bool {
	return p.Quantity == 0
}

// IsLowStock: 0 < cantidad ≤ umbral. Un producto sin stock NO es "stock bajo";
// pertenece solo al conjunto sin-stock. Las clasificaciones son independientes
// entre sí (un producto puede estar bajo de stock y próximo a vencer a la vez).
func IsLowStock(p *entity.Product) bool {
	return p.Quantity > 0 && p.Quantity <= p.Threshold()
}

// IsExpiringSoon: fecha de vencimiento estrictamente posterior a now y a lo
// sumo now + days. Productos ya vencidos quedan excluidos; el límite superior
// es inclusivo (vence exactamente en now+days ⇒ incluido).
func IsExpiringSoon(p *entity.Product, now time.Time, days int) bool {
	if p.ExpiryDate == nil {
		return false
	}
	limit := now.AddDate(0, 0, days)
	return p.ExpiryDate.After(now) && !p.ExpiryDate.After(limit)
}

// LowStock filtra los productos con cantidad ≤ umbral. Con override nil se usa
// el umbral propio de cada producto y se incluyen también los sin stock (es el
// contrato histórico de la consulta de stock bajo del tablero); con override se
// aplica ese umbral global.
func LowStock(products []*entity.Product, override *int) []*entity.Product {
	var out []*entity.Product
	for _, p := range products {
		t := p.Threshold()
		if override != nil {
			t = *override
		}
		if p.Quantity <= t {
			out = append(out, p)
		}
	}
	return out
}

// ExpiringSoon filtra los productos que vencen en el intervalo (now, now+days].
func ExpiringSoon(products []*entity.Product, now time.Time, days int) []*entity.Product {
	var out []*entity.Product
	for _, p := range products {
		if IsExpiringSoon(p, now, days) {
			out = append(out, p)
		}
	}
	return out
}

// OutOfStock filtra los productos con cantidad cero.
func OutOfStock(products []*entity.Product) []*entity.Product {
	var out []*entity.Product
	for _, p := range products {
		if IsOutOfStock(p) {
			out = append(out, p)
		}
	}
	return out
}
