package handler

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"
	"sort"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func GetMenuCategories(c *fiber.Ctx) error {
	var categories []model.MenuCategory
	if err := database.DB.Order("name asc").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateMenuCategory(c *fiber.Ctx) error {
	input := c.Locals("inputCreateMenuCategory").(model.CreateMenuCategoryInput)

	category := model.MenuCategory{
		Name:        input.Name,
		Description: input.Description,
	}
	if err := database.DB.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func GetMenuItems(c *fiber.Ctx) error {
	db := database.DB

	var filter model.FilterMenuItem
	if err := c.QueryParser(&filter); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid filter", err)
	}

	query := db.Model(&model.MenuItem{}).
		Preload("Category").
		Preload("Recipes.Ingredient").
		Order("name asc")

	if filter.SearchKey != "" {
		query = query.Where("name ILIKE ?", "%"+filter.SearchKey+"%")
	}
	if filter.CategoryId != nil {
		query = query.Where("category_id = ?", *filter.CategoryId)
	}
	if filter.Available != nil {
		query = query.Where("is_available = ?", *filter.Available)
	}

	var totalCount int64
	query.Count(&totalCount)

	var items []model.MenuItem
	if err := utils.ApplyPagination(query, filter.Limit, filter.Page).Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_QUERY, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, model.ResponseCustom{
		Rows:       items,
		Limit:      filter.Limit,
		Page:       filter.Page,
		TotalCount: totalCount,
	})
}

func GetMenuItemById(c *fiber.Ctx) error {
	menuItemId := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.
		Preload("Category").
		Preload("Recipes.Ingredient").
		First(&item, menuItemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func CreateMenuItem(c *fiber.Ctx) error {
	input := c.Locals("inputCreateMenuItem").(model.CreateMenuItemInput)
	db := database.DB

	var created model.MenuItem
	err := db.Transaction(func(tx *gorm.DB) error {
		var category model.MenuCategory
		if err := tx.First(&category, input.CategoryId).Error; err != nil {
			return err
		}

		item := model.MenuItem{
			Name:        input.Name,
			Slug:        helper.GenerateUniqueMenuItemSlug(tx, input.Name),
			CategoryID:  category.ID,
			Price:       input.Price,
			PrepMinutes: input.PrepMinutes,
			ImageUrl:    input.ImageUrl,
			IsAvailable: true,
		}
		for _, line := range input.Recipes {
			var ingredient model.Ingredient
			if err := tx.First(&ingredient, line.IngredientId).Error; err != nil {
				return err
			}
			item.Recipes = append(item.Recipes, model.Recipe{
				IngredientID: ingredient.ID,
				Quantity:     line.Quantity,
			})
		}

		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		created = item
		return nil
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_CREATE, err)
	}

	db.Preload("Category").Preload("Recipes.Ingredient").First(&created, created.ID)

	return utils.SuccessResponse(c, fiber.StatusCreated, created)
}

func EditMenuItem(c *fiber.Ctx) error {
	menuItemId := c.Locals("inputId").(int)
	input := c.Locals("inputEditMenuItem").(model.EditMenuItemInput)
	db := database.DB

	var item model.MenuItem
	if err := db.First(&item, menuItemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
		updates["slug"] = helper.GenerateUniqueMenuItemSlug(db, *input.Name)
	}
	if input.CategoryId != nil {
		updates["category_id"] = *input.CategoryId
	}
	if input.Price != nil {
		updates["price"] = *input.Price
	}
	if input.PrepMinutes != nil {
		updates["prep_minutes"] = *input.PrepMinutes
	}
	if input.ImageUrl != nil {
		updates["image_url"] = *input.ImageUrl
	}
	if input.IsAvailable != nil {
		updates["is_available"] = *input.IsAvailable
	}

	if err := db.Model(&item).Updates(updates).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	db.Preload("Category").Preload("Recipes.Ingredient").First(&item, item.ID)

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteMenuItem(c *fiber.Ctx) error {
	input := c.Locals("deleteIds").(model.ArrayId)

	if err := database.DB.Where("menu_item_id IN ?", input.IDs).Delete(&model.Recipe{}).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}
	if err := database.DB.Delete(&model.MenuItem{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_DELETE, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}

// ProduceMenuItem converts raw ingredients into finished-good stock.
func ProduceMenuItem(c *fiber.Ctx) error {
	menuItemId := uint(c.Locals("inputId").(int))
	input := c.Locals("inputProduce").(model.ProduceMenuItemInput)

	item, err := helper.ProduceMenuItem(database.DB, menuItemId, input.Quantity)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

// GenerateSignature signs a direct-to-cloudinary upload for menu item photos.
func GenerateSignature(c *fiber.Ctx) error {
	_, isAdmin, isManager := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, nil)
	}

	type SigParams struct {
		Folder   string `json:"folder"`
		PublicID string `json:"public_id"`
	}

	var params SigParams
	if err := c.BodyParser(&params); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid params", err)
	}

	timestamp := time.Now().Unix()

	paramMap := make(map[string]string)
	if params.Folder != "" {
		paramMap["folder"] = params.Folder
	}
	if params.PublicID != "" {
		paramMap["public_id"] = params.PublicID
	}
	paramMap["timestamp"] = fmt.Sprintf("%d", timestamp)

	keys := make([]string, 0, len(paramMap))
	for k := range paramMap {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	// Cloudinary signs the sorted raw key=value pairs, no URL encoding.
	var stringToSign strings.Builder
	for i, k := range keys {
		if i > 0 {
			stringToSign.WriteString("&")
		}
		stringToSign.WriteString(k)
		stringToSign.WriteString("=")
		stringToSign.WriteString(paramMap[k])
	}
	stringToSign.WriteString(os.Getenv("CLOUDINARY_API_SECRET"))

	h := sha1.New()
	h.Write([]byte(stringToSign.String()))
	signature := hex.EncodeToString(h.Sum(nil))

	return c.JSON(fiber.Map{
		"signature": signature,
		"timestamp": timestamp,
		"apiKey":    os.Getenv("CLOUDINARY_API_KEY"),
		"cloudName": os.Getenv("CLOUDINARY_CLOUD_NAME"),
	})
}

// UploadMenuItemImage uploads a photo server-side and stores the URL.
func UploadMenuItemImage(c *fiber.Ctx) error {
	menuItemId := c.Locals("inputId").(int)
	db := database.DB

	var item model.MenuItem
	if err := db.First(&item, menuItemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.NOT_FOUND, err)
	}

	file, err := c.FormFile("image")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing image file", err)
	}

	src, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read file", err)
	}
	defer src.Close()

	cld := helper.InitCloudinary()
	result, err := cld.Upload.Upload(context.Background(), src, uploader.UploadParams{
		Folder:   "menu-items",
		PublicID: item.Slug,
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Upload failed", err)
	}

	if err := db.Model(&item).Update("image_url", result.SecureURL).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_EDIT, err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"imageUrl": result.SecureURL,
	})
}
