package handler

import (
	"errors"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetAdminStats(c *fiber.Ctx) error {
	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	db := database.DB

	type TopItem struct {
		MenuItemID uint    `json:"menuItemId"`
		Name       string  `json:"name"`
		Quantity   int64   `json:"quantity"`
		Revenue    float64 `json:"revenue"`
	}

	var stats struct {
		MenuItems   int64 `json:"menuItems"`
		Ingredients int64 `json:"ingredients"`
		Tables      int64 `json:"tables"`
		Customers   int64 `json:"customers"`
		Staffs      int64 `json:"staffs"`

		OpenOrders    int64 `json:"openOrders"`
		LowStockItems int64 `json:"lowStockItems"`

		TodayOrders   int64   `json:"todayOrders"`
		TodayBills    int64   `json:"todayBills"`
		TodayRevenue  float64 `json:"todayRevenue"`
		TodayVat      float64 `json:"todayVat"`
		RevenueGrowth float64 `json:"revenueGrowth"` // %
		OrdersGrowth  float64 `json:"ordersGrowth"`  // %

		TopItems []TopItem `json:"topItems"`
	}

	now := time.Now().In(time.Local)
	todayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	db.Model(&model.MenuItem{}).Count(&stats.MenuItems)
	db.Model(&model.Ingredient{}).Count(&stats.Ingredients)
	db.Model(&model.Table{}).Count(&stats.Tables)
	db.Model(&model.Customer{}).Where("is_active = ?", true).Count(&stats.Customers)
	db.Model(&model.Staff{}).Count(&stats.Staffs)

	db.Model(&model.Order{}).
		Where("status NOT IN ?", []string{constants.ORDER_SERVED, constants.ORDER_CANCELLED}).
		Count(&stats.OpenOrders)
	db.Model(&model.Ingredient{}).
		Where("current_stock <= min_stock").
		Count(&stats.LowStockItems)

	db.Model(&model.Order{}).
		Where("created_at >= ?", todayStart).
		Count(&stats.TodayOrders)
	db.Model(&model.Bill{}).
		Where("settled_at >= ?", todayStart).
		Count(&stats.TodayBills)

	db.Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM bills
        WHERE settled_at >= ?
    `, todayStart).Scan(&stats.TodayRevenue)

	db.Raw(`
        SELECT COALESCE(SUM(vat_amount), 0)
        FROM bills
        WHERE settled_at >= ?
    `, todayStart).Scan(&stats.TodayVat)

	var yesterdayRevenue float64
	var yesterdayOrders int64

	db.Raw(`
        SELECT COALESCE(SUM(total_amount), 0)
        FROM bills
        WHERE settled_at >= ? AND settled_at < ?
    `, yesterdayStart, todayStart).Scan(&yesterdayRevenue)

	db.Model(&model.Order{}).
		Where("created_at >= ? AND created_at < ?", yesterdayStart, todayStart).
		Count(&yesterdayOrders)

	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	db.Raw(`
        SELECT
            mi.id AS menu_item_id,
            mi.name,
            COALESCE(SUM(oi.quantity), 0) AS quantity,
            COALESCE(SUM(oi.quantity * oi.price), 0) AS revenue
        FROM order_items oi
        JOIN orders o ON o.id = oi.order_id
        JOIN menu_items mi ON mi.id = oi.menu_item_id
        WHERE o.created_at >= ?
          AND o.status <> ?
        GROUP BY mi.id, mi.name
        ORDER BY revenue DESC
        LIMIT 5
    `, monthStart, constants.ORDER_CANCELLED).Scan(&stats.TopItems)

	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)
	stats.OrdersGrowth = utils.CalculateGrowth(float64(stats.TodayOrders), float64(yesterdayOrders))

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}
