package plans

import "github.com/sbilibin2017/health-planner/internal/models"

// Static plan templates. Fixed reference data, one per recognized condition.

var normalPlan = models.PlanDocument{
	Days: []models.PlanDay{
		{
			Day:       "Monday",
			Breakfast: "Oatmeal with fruits and nuts, Green tea",
			Lunch:     "Grilled chicken with quinoa and steamed vegetables",
			Dinner:    "Baked salmon with brown rice and salad",
			Snacks:    "Mixed nuts, Fresh fruit",
		},
		{
			Day:       "Tuesday",
			Breakfast: "Whole grain toast with avocado and eggs",
			Lunch:     "Turkey sandwich with whole grain bread and vegetables",
			Dinner:    "Stir-fried tofu with vegetables and brown rice",
			Snacks:    "Greek yogurt, Carrot sticks",
		},
		{
			Day:       "Wednesday",
			Breakfast: "Smoothie bowl with berries and granola",
			Lunch:     "Lentil soup with whole grain bread",
			Dinner:    "Grilled fish with sweet potato and broccoli",
			Snacks:    "Hummus with cucumber, Apple",
		},
		{
			Day:       "Thursday",
			Breakfast: "Greek yogurt with honey and nuts",
			Lunch:     "Chicken Caesar salad with light dressing",
			Dinner:    "Vegetable curry with brown rice",
			Snacks:    "Protein bar, Orange",
		},
		{
			Day:       "Friday",
			Breakfast: "Scrambled eggs with spinach and tomatoes",
			Lunch:     "Quinoa bowl with roasted vegetables",
			Dinner:    "Grilled chicken breast with roasted vegetables",
			Snacks:    "Mixed berries, Almonds",
		},
		{
			Day:       "Saturday",
			Breakfast: "Pancakes with fresh berries",
			Lunch:     "Tuna salad with mixed greens",
			Dinner:    "Baked chicken with sweet potato fries",
			Snacks:    "Cottage cheese, Grapes",
		},
		{
			Day:       "Sunday",
			Breakfast: "French toast with fruit compote",
			Lunch:     "Vegetable pasta with olive oil",
			Dinner:    "Lean beef with roasted vegetables",
			Snacks:    "Trail mix, Banana",
		},
	},
	Exercise: "Moderate cardio 30 minutes daily, Strength training 3x per week",
	Water:    "8-10 glasses (2-2.5 liters) daily",
	Tips: []string{
		"Eat colorful fruits and vegetables",
		"Include lean proteins in every meal",
		"Choose whole grains over refined grains",
		"Stay hydrated throughout the day",
		"Practice portion control",
	},
}

var diabeticPlan = models.PlanDocument{
	Days: []models.PlanDay{
		{
			Day:       "Monday",
			Breakfast: "Steel-cut oats with berries and cinnamon",
			Lunch:     "Grilled chicken salad with olive oil dressing",
			Dinner:    "Baked fish with cauliflower rice and green beans",
			Snacks:    "Raw almonds, Cucumber slices",
		},
		{
			Day:       "Tuesday",
			Breakfast: "Scrambled eggs with spinach and mushrooms",
			Lunch:     "Turkey lettuce wraps with vegetables",
			Dinner:    "Lean beef stir-fry with low-carb vegetables",
			Snacks:    "Celery with almond butter, Cherry tomatoes",
		},
		{
			Day:       "Wednesday",
			Breakfast: "Greek yogurt (unsweetened) with chia seeds",
			Lunch:     "Lentil soup with side salad",
			Dinner:    "Grilled salmon with asparagus and quinoa",
			Snacks:    "Walnuts, Bell pepper strips",
		},
		{
			Day:       "Thursday",
			Breakfast: "Vegetable omelet with avocado",
			Lunch:     "Chicken breast with roasted vegetables",
			Dinner:    "Baked cod with broccoli and brown rice",
			Snacks:    "Hard-boiled egg, Small apple",
		},
		{
			Day:       "Friday",
			Breakfast: "Protein smoothie with spinach and berries",
			Lunch:     "Tuna salad over mixed greens",
			Dinner:    "Turkey meatballs with zucchini noodles",
			Snacks:    "String cheese, Carrots",
		},
		{
			Day:       "Saturday",
			Breakfast: "Cottage cheese with cinnamon and nuts",
			Lunch:     "Grilled chicken with cauliflower mash",
			Dinner:    "Baked tilapia with green beans",
			Snacks:    "Almonds, Cucumber",
		},
		{
			Day:       "Sunday",
			Breakfast: "Egg white omelet with vegetables",
			Lunch:     "Chicken soup with vegetables",
			Dinner:    "Lean pork with Brussels sprouts",
			Snacks:    "Pumpkin seeds, Celery",
		},
	},
	Exercise: "Walk 30 minutes after meals, Light resistance training 3x week",
	Water:    "10-12 glasses (2.5-3 liters) daily",
	Tips: []string{
		"Monitor blood sugar levels regularly",
		"Choose low glycemic index foods",
		"Eat at regular intervals",
		"Avoid sugary drinks and desserts",
		"Include fiber-rich foods in every meal",
	},
}

var bloodPressurePlan = models.PlanDocument{
	Days: []models.PlanDay{
		{
			Day:       "Monday",
			Breakfast: "Oatmeal with banana and flaxseeds",
			Lunch:     "Grilled fish with steamed vegetables",
			Dinner:    "Skinless chicken with brown rice and salad",
			Snacks:    "Fresh berries, Unsalted nuts",
		},
		{
			Day:       "Tuesday",
			Breakfast: "Whole grain toast with avocado",
			Lunch:     "Bean salad with olive oil dressing",
			Dinner:    "Baked salmon with sweet potato",
			Snacks:    "Apple slices, Low-fat yogurt",
		},
		{
			Day:       "Wednesday",
			Breakfast: "Greek yogurt with granola and berries",
			Lunch:     "Vegetable soup with whole grain bread",
			Dinner:    "Grilled chicken with quinoa and broccoli",
			Snacks:    "Carrot sticks, Hummus",
		},
		{
			Day:       "Thursday",
			Breakfast: "Smoothie with spinach, banana, and berries",
			Lunch:     "Tuna sandwich on whole grain bread",
			Dinner:    "Turkey breast with roasted vegetables",
			Snacks:    "Orange, Almonds",
		},
		{
			Day:       "Friday",
			Breakfast: "Scrambled eggs with tomatoes and herbs",
			Lunch:     "Lentil curry with brown rice",
			Dinner:    "Baked cod with green beans",
			Snacks:    "Banana, Walnuts",
		},
		{
			Day:       "Saturday",
			Breakfast: "Whole grain cereal with low-fat milk",
			Lunch:     "Chicken salad with mixed greens",
			Dinner:    "Vegetable stir-fry with tofu",
			Snacks:    "Grapes, Cashews",
		},
		{
			Day:       "Sunday",
			Breakfast: "Fruit salad with cottage cheese",
			Lunch:     "Quinoa bowl with roasted vegetables",
			Dinner:    "Grilled fish with asparagus",
			Snacks:    "Pear, Pistachios",
		},
	},
	Exercise: "Moderate aerobic exercise 30-45 minutes daily, Yoga 3x week",
	Water:    "8-10 glasses, limit caffeine",
	Tips: []string{
		"Reduce sodium intake significantly",
		"Eat potassium-rich foods",
		"Limit processed foods",
		"Avoid alcohol and smoking",
		"Maintain healthy weight",
	},
}

var heartPlan = models.PlanDocument{
	Days: []models.PlanDay{
		{
			Day:       "Monday",
			Breakfast: "Oatmeal with walnuts and blueberries",
			Lunch:     "Salmon salad with olive oil",
			Dinner:    "Grilled chicken with steamed vegetables",
			Snacks:    "Almonds, Apple",
		},
		{
			Day:       "Tuesday",
			Breakfast: "Whole grain toast with avocado",
			Lunch:     "Lentil soup with vegetables",
			Dinner:    "Baked fish with quinoa",
			Snacks:    "Fresh berries, Walnuts",
		},
		{
			Day:       "Wednesday",
			Breakfast: "Greek yogurt with chia seeds",
			Lunch:     "Tuna salad with mixed greens",
			Dinner:    "Turkey breast with brown rice",
			Snacks:    "Carrot sticks, Hummus",
		},
		{
			Day:       "Thursday",
			Breakfast: "Smoothie with flaxseeds and berries",
			Lunch:     "Chickpea salad with vegetables",
			Dinner:    "Grilled salmon with broccoli",
			Snacks:    "Orange, Almonds",
		},
		{
			Day:       "Friday",
			Breakfast: "Scrambled eggs with spinach",
			Lunch:     "Vegetable soup with beans",
			Dinner:    "Baked chicken with sweet potato",
			Snacks:    "Pear, Walnuts",
		},
		{
			Day:       "Saturday",
			Breakfast: "Oat bran cereal with berries",
			Lunch:     "Quinoa bowl with vegetables",
			Dinner:    "Grilled fish with asparagus",
			Snacks:    "Grapes, Pistachios",
		},
		{
			Day:       "Sunday",
			Breakfast: "Whole grain pancakes with fruit",
			Lunch:     "Bean and vegetable salad",
			Dinner:    "Lean turkey with roasted vegetables",
			Snacks:    "Banana, Almonds",
		},
	},
	Exercise: "Cardio 30-45 minutes 5x week, Gentle strength training",
	Water:    "8-10 glasses daily",
	Tips: []string{
		"Choose heart-healthy fats",
		"Eat fatty fish twice a week",
		"Limit saturated and trans fats",
		"Increase fiber intake",
		"Control portion sizes",
	},
}

var weightLossPlan = models.PlanDocument{
	Days: []models.PlanDay{
		{
			Day:       "Monday",
			Breakfast: "Protein smoothie with greens",
			Lunch:     "Grilled chicken salad",
			Dinner:    "Baked fish with vegetables",
			Snacks:    "Cucumber, Boiled egg",
		},
		{
			Day:       "Tuesday",
			Breakfast: "Egg white omelet with vegetables",
			Lunch:     "Tuna with mixed greens",
			Dinner:    "Turkey breast with broccoli",
			Snacks:    "Celery, Greek yogurt",
		},
		{
			Day:       "Wednesday",
			Breakfast: "Low-fat cottage cheese with berries",
			Lunch:     "Chicken soup with vegetables",
			Dinner:    "Grilled fish with zucchini",
			Snacks:    "Cherry tomatoes, Almonds",
		},
		{
			Day:       "Thursday",
			Breakfast: "Protein shake with spinach",
			Lunch:     "Vegetable salad with grilled chicken",
			Dinner:    "Baked salmon with asparagus",
			Snacks:    "Carrot sticks, Hard-boiled egg",
		},
		{
			Day:       "Friday",
			Breakfast: "Greek yogurt with chia seeds",
			Lunch:     "Tuna salad lettuce wraps",
			Dinner:    "Lean beef with green beans",
			Snacks:    "Bell peppers, Cottage cheese",
		},
		{
			Day:       "Saturday",
			Breakfast: "Vegetable omelet",
			Lunch:     "Grilled chicken with cauliflower rice",
			Dinner:    "Baked cod with Brussels sprouts",
			Snacks:    "Cucumber, Almonds",
		},
		{
			Day:       "Sunday",
			Breakfast: "Protein pancakes with berries",
			Lunch:     "Chicken and vegetable stir-fry",
			Dinner:    "Grilled fish with salad",
			Snacks:    "Celery, Greek yogurt",
		},
	},
	Exercise: "Cardio 45-60 minutes 5-6x week, Strength training 3x week",
	Water:    "10-12 glasses daily (helps metabolism)",
	Tips: []string{
		"Create a calorie deficit",
		"Eat protein with every meal",
		"Avoid processed foods",
		"Practice mindful eating",
		"Get adequate sleep",
	},
}

var thyroidPlan = models.PlanDocument{
	Days: []models.PlanDay{
		{
			Day:       "Monday",
			Breakfast: "Scrambled eggs with mushrooms",
			Lunch:     "Grilled chicken with quinoa",
			Dinner:    "Baked salmon with vegetables",
			Snacks:    "Brazil nuts, Apple",
		},
		{
			Day:       "Tuesday",
			Breakfast: "Greek yogurt with pumpkin seeds",
			Lunch:     "Turkey with brown rice",
			Dinner:    "Lean beef with sweet potato",
			Snacks:    "Sunflower seeds, Berries",
		},
		{
			Day:       "Wednesday",
			Breakfast: "Oatmeal with walnuts",
			Lunch:     "Tuna salad with vegetables",
			Dinner:    "Chicken breast with roasted vegetables",
			Snacks:    "Almonds, Orange",
		},
		{
			Day:       "Thursday",
			Breakfast: "Eggs with spinach and avocado",
			Lunch:     "Lentil soup with chicken",
			Dinner:    "Grilled fish with broccoli",
			Snacks:    "Cashews, Pear",
		},
		{
			Day:       "Friday",
			Breakfast: "Protein smoothie with chia seeds",
			Lunch:     "Chicken with quinoa salad",
			Dinner:    "Baked cod with asparagus",
			Snacks:    "Walnuts, Banana",
		},
		{
			Day:       "Saturday",
			Breakfast: "Cottage cheese with fruits",
			Lunch:     "Turkey burger with vegetables",
			Dinner:    "Grilled salmon with brown rice",
			Snacks:    "Mixed nuts, Apple",
		},
		{
			Day:       "Sunday",
			Breakfast: "Vegetable omelet with herbs",
			Lunch:     "Chicken soup with vegetables",
			Dinner:    "Lean pork with roasted vegetables",
			Snacks:    "Brazil nuts, Berries",
		},
	},
	Exercise: "Moderate exercise 30 minutes daily, Avoid over-exercising",
	Water:    "8-10 glasses daily",
	Tips: []string{
		"Eat selenium-rich foods",
		"Include iodine sources",
		"Avoid excessive soy products",
		"Limit goitrogenic foods when raw",
		"Take thyroid medication as prescribed",
	},
}
