package catalog

import "github.com/messmeal/backend/internal/domain"

// MessHallFoods returns the default dataset: common North and South Indian
// hostel mess dishes with per-portion nutrition. Several entries are spelling
// variants of the same dish (Chole/Cholla, Curd/Dahi) and share values.
func MessHallFoods() []domain.FoodRecord {
	return []domain.FoodRecord{
		// Common mess items
		{Name: "Rajma Rice", Calories: 450, Protein: 15, Carbs: 70, Fats: 8, Portion: "1 plate"},
		{Name: "Rajma", Calories: 230, Protein: 15, Carbs: 40, Fats: 1, Portion: "1 bowl"},
		{Name: "Dal Rice", Calories: 350, Protein: 12, Carbs: 65, Fats: 5, Portion: "1 plate"},
		{Name: "Paneer Curry", Calories: 280, Protein: 18, Carbs: 12, Fats: 18, Portion: "1 bowl"},
		{Name: "Paneer", Calories: 265, Protein: 18, Carbs: 3, Fats: 20, Portion: "100g"},
		{Name: "Dal Fry", Calories: 150, Protein: 8, Carbs: 22, Fats: 4, Portion: "1 bowl"},
		{Name: "Dal Tadka", Calories: 160, Protein: 8, Carbs: 22, Fats: 5, Portion: "1 bowl"},
		{Name: "Dal Mix Tadka", Calories: 160, Protein: 8, Carbs: 22, Fats: 5, Portion: "1 bowl"},
		{Name: "Dal", Calories: 150, Protein: 8, Carbs: 22, Fats: 4, Portion: "1 bowl"},
		{Name: "Arhar Dal", Calories: 155, Protein: 9, Carbs: 20, Fats: 4, Portion: "1 bowl"},
		{Name: "Arhar", Calories: 155, Protein: 9, Carbs: 20, Fats: 4, Portion: "1 bowl"},
		{Name: "Chana Masala", Calories: 220, Protein: 12, Carbs: 28, Fats: 6, Portion: "1 bowl"},
		{Name: "Chana", Calories: 220, Protein: 12, Carbs: 28, Fats: 6, Portion: "1 bowl"},
		{Name: "Chole", Calories: 220, Protein: 12, Carbs: 28, Fats: 6, Portion: "1 bowl"},
		{Name: "Cholla", Calories: 220, Protein: 12, Carbs: 28, Fats: 6, Portion: "1 bowl"},
		{Name: "Chanamasala", Calories: 220, Protein: 12, Carbs: 28, Fats: 6, Portion: "1 bowl"},
		{Name: "Kala Chana", Calories: 220, Protein: 12, Carbs: 28, Fats: 6, Portion: "1 bowl"},
		{Name: "Masoor Sabut", Calories: 120, Protein: 9, Carbs: 20, Fats: 0.5, Portion: "1 bowl"},

		// Breads
		{Name: "Roti", Calories: 70, Protein: 2, Carbs: 14, Fats: 1, Portion: "1 piece"},
		{Name: "Chapati", Calories: 70, Protein: 2, Carbs: 14, Fats: 1, Portion: "1 piece"},
		{Name: "Paratha", Calories: 180, Protein: 4, Carbs: 25, Fats: 8, Portion: "1 piece"},
		{Name: "Poori", Calories: 160, Protein: 3, Carbs: 18, Fats: 10, Portion: "1 piece"},
		{Name: "Naan", Calories: 180, Protein: 5, Carbs: 30, Fats: 5, Portion: "1 piece"},

		// Rice dishes
		{Name: "Rice", Calories: 130, Protein: 2, Carbs: 30, Fats: 0.5, Portion: "1/2 cup"},
		{Name: "Jeera Rice", Calories: 160, Protein: 2, Carbs: 32, Fats: 3, Portion: "1 cup"},
		{Name: "Zeera Rice", Calories: 160, Protein: 2, Carbs: 32, Fats: 3, Portion: "1 cup"},
		{Name: "Onion Rice", Calories: 180, Protein: 3, Carbs: 35, Fats: 4, Portion: "1 cup"},
		{Name: "Biryani", Calories: 380, Protein: 12, Carbs: 50, Fats: 15, Portion: "1 plate"},
		{Name: "Veg Biryani", Calories: 340, Protein: 8, Carbs: 50, Fats: 12, Portion: "1 plate"},
		{Name: "Pulao", Calories: 300, Protein: 8, Carbs: 45, Fats: 10, Portion: "1 plate"},
		{Name: "Matar Pulao", Calories: 300, Protein: 8, Carbs: 45, Fats: 10, Portion: "1 plate"},
		{Name: "Tahari", Calories: 300, Protein: 10, Carbs: 48, Fats: 8, Portion: "1 plate"},

		// Dairy
		{Name: "Curd", Calories: 80, Protein: 6, Carbs: 8, Fats: 3, Portion: "1 bowl"},
		{Name: "Dahi", Calories: 80, Protein: 6, Carbs: 8, Fats: 3, Portion: "1 bowl"},
		{Name: "Raita", Calories: 60, Protein: 4, Carbs: 6, Fats: 3, Portion: "1 bowl"},
		{Name: "Boondi Raita", Calories: 70, Protein: 4, Carbs: 8, Fats: 3, Portion: "1 bowl"},
		{Name: "Milk", Calories: 120, Protein: 8, Carbs: 12, Fats: 5, Portion: "1 cup"},

		// Proteins
		{Name: "Egg", Calories: 78, Protein: 6, Carbs: 0.5, Fats: 5, Portion: "1 egg"},
		{Name: "Egg Curry", Calories: 220, Protein: 12, Carbs: 8, Fats: 15, Portion: "2 eggs"},
		{Name: "Butter", Calories: 100, Protein: 0, Carbs: 0, Fats: 11, Portion: "1 tbsp"},
		{Name: "Matar Paneer", Calories: 280, Protein: 15, Carbs: 12, Fats: 18, Portion: "1 bowl"},

		// Vegetables
		{Name: "Aloo", Calories: 90, Protein: 2, Carbs: 20, Fats: 0.2, Portion: "1 medium"},
		{Name: "Aloo Gobhi", Calories: 120, Protein: 3, Carbs: 18, Fats: 4, Portion: "1 bowl"},
		{Name: "Aloo Gajar", Calories: 100, Protein: 2, Carbs: 15, Fats: 3, Portion: "1 bowl"},
		{Name: "Alu Curry", Calories: 150, Protein: 3, Carbs: 22, Fats: 6, Portion: "1 bowl"},
		{Name: "Dum Aloo", Calories: 180, Protein: 3, Carbs: 25, Fats: 8, Portion: "1 bowl"},
		{Name: "Gobhi", Calories: 25, Protein: 2, Carbs: 5, Fats: 0.3, Portion: "1 cup"},
		{Name: "Kaddu", Calories: 30, Protein: 1, Carbs: 7, Fats: 0.1, Portion: "1 cup"},
		{Name: "Cabbage Matar", Calories: 70, Protein: 3, Carbs: 10, Fats: 2, Portion: "1 bowl"},
		{Name: "Baigan Bharta", Calories: 90, Protein: 2, Carbs: 10, Fats: 5, Portion: "1 bowl"},
		{Name: "Louki Kofta", Calories: 160, Protein: 5, Carbs: 15, Fats: 10, Portion: "1 bowl"},
		{Name: "Moong Kofta", Calories: 150, Protein: 8, Carbs: 12, Fats: 8, Portion: "1 bowl"},
		{Name: "Mixed Veg", Calories: 100, Protein: 4, Carbs: 12, Fats: 4, Portion: "1 bowl"},
		{Name: "Tawa Veg", Calories: 120, Protein: 4, Carbs: 12, Fats: 6, Portion: "1 bowl"},
		{Name: "Salad", Calories: 40, Protein: 2, Carbs: 8, Fats: 0.5, Portion: "1 bowl"},

		// South Indian
		{Name: "Idli", Calories: 100, Protein: 3, Carbs: 20, Fats: 1, Portion: "2 pieces"},
		{Name: "Dosa", Calories: 160, Protein: 5, Carbs: 25, Fats: 4, Portion: "1 dosa"},
		{Name: "Uttapam", Calories: 140, Protein: 4, Carbs: 22, Fats: 3, Portion: "1 piece"},
		{Name: "Sambhar", Calories: 130, Protein: 8, Carbs: 15, Fats: 4, Portion: "1 bowl"},
		{Name: "Rasam", Calories: 50, Protein: 2, Carbs: 8, Fats: 2, Portion: "1 bowl"},

		// Breakfast items
		{Name: "Poha", Calories: 160, Protein: 4, Carbs: 30, Fats: 3, Portion: "1 bowl"},
		{Name: "Upma", Calories: 200, Protein: 6, Carbs: 35, Fats: 5, Portion: "1 cup"},
		{Name: "Halwa", Calories: 280, Protein: 3, Carbs: 45, Fats: 12, Portion: "1 bowl"},
		{Name: "Suji Halwa", Calories: 280, Protein: 3, Carbs: 45, Fats: 12, Portion: "1 bowl"},
		{Name: "Moong Dal Halwa", Calories: 350, Protein: 8, Carbs: 50, Fats: 15, Portion: "1 bowl"},
		{Name: "Maggi", Calories: 380, Protein: 8, Carbs: 55, Fats: 15, Portion: "1 packet"},
		{Name: "Cornflakes", Calories: 110, Protein: 2, Carbs: 25, Fats: 0.5, Portion: "1 cup"},
		{Name: "Dalia", Calories: 160, Protein: 5, Carbs: 30, Fats: 2, Portion: "1 bowl"},
		{Name: "Samosa", Calories: 220, Protein: 4, Carbs: 25, Fats: 12, Portion: "1 piece"},
		{Name: "Cholla Samose", Calories: 440, Protein: 16, Carbs: 53, Fats: 18, Portion: "combo"},

		// Sweets
		{Name: "Jalebi", Calories: 250, Protein: 2, Carbs: 50, Fats: 8, Portion: "100g"},
		{Name: "Gulab Jamun", Calories: 300, Protein: 3, Carbs: 40, Fats: 15, Portion: "2 pieces"},
		{Name: "Gulabjamun", Calories: 300, Protein: 3, Carbs: 40, Fats: 15, Portion: "2 pieces"},
		{Name: "Kala Jam", Calories: 310, Protein: 3, Carbs: 42, Fats: 15, Portion: "2 pieces"},
		{Name: "Kheer", Calories: 250, Protein: 6, Carbs: 40, Fats: 8, Portion: "1 bowl"},
		{Name: "Sewai", Calories: 210, Protein: 4, Carbs: 35, Fats: 6, Portion: "1 bowl"},
		{Name: "Ladoo", Calories: 260, Protein: 4, Carbs: 35, Fats: 12, Portion: "2 pieces"},
		{Name: "Nariyal Laddo", Calories: 280, Protein: 3, Carbs: 38, Fats: 14, Portion: "2 pieces"},

		// Condiments & Misc
		{Name: "Chutney", Calories: 25, Protein: 1, Carbs: 5, Fats: 0.5, Portion: "2 tbsp"},
		{Name: "Chatni", Calories: 25, Protein: 1, Carbs: 5, Fats: 0.5, Portion: "2 tbsp"},
		{Name: "Hari Chatni", Calories: 20, Protein: 1, Carbs: 3, Fats: 0.5, Portion: "2 tbsp"},
		{Name: "Lashun Chatni", Calories: 25, Protein: 1, Carbs: 4, Fats: 1, Portion: "2 tbsp"},
		{Name: "Achar", Calories: 20, Protein: 0.5, Carbs: 3, Fats: 1, Portion: "1 tbsp"},
		{Name: "Jam", Calories: 60, Protein: 0, Carbs: 15, Fats: 0, Portion: "1 tbsp"},
		{Name: "Sauce", Calories: 20, Protein: 0.5, Carbs: 5, Fats: 0, Portion: "1 tbsp"},
		{Name: "Kadhi Pakora", Calories: 200, Protein: 8, Carbs: 15, Fats: 12, Portion: "1 bowl"},
		{Name: "Kadhi", Calories: 180, Protein: 8, Carbs: 12, Fats: 10, Portion: "1 bowl"},
		{Name: "Sprout", Calories: 50, Protein: 4, Carbs: 8, Fats: 0.5, Portion: "1 cup"},
		{Name: "Dal Makhani", Calories: 280, Protein: 10, Carbs: 25, Fats: 15, Portion: "1 bowl"},

		// Fruits
		{Name: "Banana", Calories: 105, Protein: 1, Carbs: 27, Fats: 0.3, Portion: "1 medium"},
		{Name: "Papaya", Calories: 43, Protein: 0.5, Carbs: 11, Fats: 0.2, Portion: "1 cup"},

		// Special dishes
		{Name: "Special Dinner", Calories: 520, Protein: 25, Carbs: 60, Fats: 20, Portion: "1 thali"},
	}
}
