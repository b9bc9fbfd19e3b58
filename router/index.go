package router

import (
	"restaurant_manager/handler"
	"restaurant_manager/middleware"
	"restaurant_manager/validate"

	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func SetupRoutes(app *fiber.App) {
	api := app.Group("/api", logger.New())
	v1 := api.Group("/v1", logger.New())

	auth := v1.Group("/auth")
	auth.Post("/login", handler.Login)
	auth.Post("/refresh-token", handler.RefreshToken)
	auth.Get("/me", middleware.Protected(), handler.Me)
	auth.Post("/change-password", middleware.Protected(), validate.AdminChangePassword(), handler.AdminChangePassword)

	staff := v1.Group("/staff", logger.New())
	staff.Get("/", middleware.Protected(), handler.GetStaffs)
	staff.Get("/:staffId", middleware.Protected(), validate.GetById("staffId"), handler.GetStaffById)
	staff.Post("/", middleware.Protected(), validate.CreateStaff(), handler.CreateStaff)
	staff.Put("/:staffId", middleware.Protected(), validate.EditStaff("staffId"), handler.EditStaff)
	staff.Patch("/:staffId/active/:isActive", middleware.Protected(), validate.GetById("staffId"), handler.ActiveStaff)

	customer := v1.Group("/customer", logger.New())
	customer.Get("/", middleware.Protected(), handler.GetCustomers)
	customer.Get("/:customerId", middleware.Protected(), validate.GetById("customerId"), handler.GetCustomerById)
	customer.Get("/:customerId/orders", middleware.Protected(), validate.GetById("customerId"), handler.GetCustomerOrders)
	customer.Post("/", middleware.Protected(), validate.CreateCustomer(), handler.CreateCustomer)
	customer.Put("/:customerId", middleware.Protected(), validate.EditCustomer("customerId"), handler.EditCustomer)
	customer.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteCustomer)

	v1.Post("/cloudinary-signature", middleware.Protected(), handler.GenerateSignature)
	menu := v1.Group("/menu", logger.New())
	menu.Get("/categories", middleware.Protected(), handler.GetMenuCategories)
	menu.Post("/categories", middleware.Protected(), validate.CreateMenuCategory(), handler.CreateMenuCategory)
	menu.Get("/", middleware.Protected(), handler.GetMenuItems)
	menu.Get("/:menuItemId", middleware.Protected(), validate.GetById("menuItemId"), handler.GetMenuItemById)
	menu.Post("/", middleware.Protected(), validate.CreateMenuItem(), handler.CreateMenuItem)
	menu.Put("/:menuItemId", middleware.Protected(), validate.EditMenuItem("menuItemId"), handler.EditMenuItem)
	menu.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteMenuItem)
	menu.Post("/:menuItemId/produce", middleware.Protected(), validate.ProduceMenuItem("menuItemId"), handler.ProduceMenuItem)
	menu.Post("/:menuItemId/image", middleware.Protected(), validate.GetById("menuItemId"), handler.UploadMenuItemImage)

	inventory := v1.Group("/inventory", logger.New())
	inventory.Get("/", middleware.Protected(), handler.GetIngredients)
	inventory.Get("/low-stock", middleware.Protected(), handler.GetLowStock)
	inventory.Get("/movements", middleware.Protected(), handler.GetStockMovements)
	inventory.Get("/:ingredientId", middleware.Protected(), validate.GetById("ingredientId"), handler.GetIngredientById)
	inventory.Post("/", middleware.Protected(), validate.CreateIngredient(), handler.CreateIngredient)
	inventory.Put("/:ingredientId", middleware.Protected(), validate.EditIngredient("ingredientId"), handler.EditIngredient)
	inventory.Post("/:ingredientId/adjust", middleware.Protected(), validate.AdjustStock("ingredientId"), handler.AdjustIngredientStock)

	table := v1.Group("/table", logger.New())
	table.Get("/", middleware.Protected(), handler.GetTables)
	table.Get("/:tableId", middleware.Protected(), validate.GetById("tableId"), handler.GetTableById)
	table.Get("/:tableId/qr", middleware.Protected(), validate.GetById("tableId"), handler.GetTableQR)
	table.Post("/", middleware.Protected(), validate.CreateTable(), handler.CreateTable)
	table.Put("/:tableId", middleware.Protected(), validate.EditTable("tableId"), handler.EditTable)
	table.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteTable)

	order := v1.Group("/order", logger.New())
	order.Get("/", middleware.Protected(), handler.GetOrders)
	order.Get("/kitchen", middleware.Protected(), handler.GetKitchenQueue)
	order.Get("/kitchen/ws", websocket.New(handler.KitchenWebsocket))
	order.Get("/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderById)
	order.Get("/:orderId/movements", middleware.Protected(), validate.GetById("orderId"), handler.GetOrderMovements)
	order.Post("/", middleware.Protected(), validate.CreateOrder(), handler.CreateOrder)
	order.Patch("/:orderId/status", middleware.Protected(), validate.UpdateOrderStatus("orderId"), handler.UpdateOrderStatus)

	purchase := v1.Group("/purchase", logger.New())
	purchase.Get("/", middleware.Protected(), handler.GetPurchases)
	purchase.Get("/:purchaseId", middleware.Protected(), validate.GetById("purchaseId"), handler.GetPurchaseById)
	purchase.Post("/", middleware.Protected(), validate.CreatePurchase(), handler.CreatePurchase)

	promotion := v1.Group("/promotion", logger.New())
	promotion.Get("/", middleware.Protected(), handler.GetPromotions)
	promotion.Post("/", middleware.Protected(), validate.CreatePromotion(), handler.CreatePromotion)
	promotion.Put("/:promotionId", middleware.Protected(), validate.EditPromotion("promotionId"), handler.EditPromotion)
	promotion.Delete("/", middleware.Protected(), validate.Delete(), handler.DeletePromotion)

	asset := v1.Group("/asset", logger.New())
	asset.Get("/", middleware.Protected(), handler.GetAssets)
	asset.Post("/", middleware.Protected(), validate.CreateAsset(), handler.CreateAsset)
	asset.Put("/:assetId", middleware.Protected(), validate.EditAsset("assetId"), handler.EditAsset)
	asset.Delete("/", middleware.Protected(), validate.Delete(), handler.DeleteAsset)

	requisition := v1.Group("/requisition", logger.New())
	requisition.Get("/", middleware.Protected(), handler.GetRequisitions)
	requisition.Post("/", middleware.Protected(), validate.CreateRequisition(), handler.CreateRequisition)
	requisition.Patch("/:requisitionId/approve", middleware.Protected(), validate.GetById("requisitionId"), handler.ApproveRequisition)
	requisition.Patch("/:requisitionId/reject", middleware.Protected(), validate.GetById("requisitionId"), handler.RejectRequisition)

	bill := v1.Group("/bill", logger.New())
	bill.Get("/", middleware.Protected(), handler.GetBills)
	bill.Get("/order/:orderId", middleware.Protected(), validate.GetById("orderId"), handler.GetBillByOrder)
	bill.Get("/order/:orderId/preview", middleware.Protected(), validate.GetById("orderId"), handler.PreviewBill)
	bill.Post("/order/:orderId/settle", middleware.Protected(), validate.SettleBill("orderId"), handler.SettleBill)

	statistic := v1.Group("/statistic", logger.New())
	statistic.Get("/", middleware.Protected(), handler.GetAdminStats)

	// Customer-facing ordering, reached from the table QR code. No login.
	public := v1.Group("/public")
	public.Get("/menu", handler.GetMenuItems)
	public.Get("/menu/categories", handler.GetMenuCategories)
	public.Post("/order", validate.CreateOrder(), handler.CreateOrder)
	public.Get("/order/:orderId", validate.GetById("orderId"), handler.GetOrderById)
}
