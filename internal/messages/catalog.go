package messages

// catalog maps language -> template key -> text.
var catalog = map[string]map[string]string{
	"en": {
		// Start
		"welcome_new":       "👋 Welcome, {name}! You have been registered as a customer.",
		"welcome_back":      "👋 Welcome back, {name}!",
		"admin_restriction": "❌ Customer actions are not available in the admin group.",
		"select_language":   "Please select your language / Пожалуйста, выберите язык:",
		"language_changed":  "✅ Language changed to English",

		// Main menu
		"main_menu":           "Main Menu:",
		"list_cars_btn":       "🚗 List Cars",
		"my_booking_btn":      "📄 My Booking",
		"contact_admin_btn":   "📞 Contact Admin",
		"change_language_btn": "🌐 Change Language",

		// Car listing
		"select_car":  "Select a car to view details:",
		"no_cars":     "No cars available at the moment.",
		"car_details": "🚗 {make} {model} ({year})\n👤 Dealer: {dealer}",

		// Booking
		"booking_success":   "✅ Car booked successfully!\nYou can view your booking details in 'My Booking' section.",
		"booking_failed":    "❌ Booking failed: {reason}",
		"no_active_booking": "You have no active bookings.",
		"active_booking":    "Your active booking:\n\n{booking_info}",
		"return_success":    "✅ Car returned successfully!",
		"return_failed":     "❌ Return failed: {reason}",

		// Booking failure reasons
		"reason_car_unavailable":  "This car is not available for booking. It may have been recently booked.",
		"reason_car_missing":      "This car does not exist in our database.",
		"reason_already_booked":   "You already have an active booking.",
		"reason_booking_missing":  "Booking not found or already completed.",
		"reason_database_error":   "A database error occurred. Please try again later.",

		// Navigation
		"back_btn":       "🔙 Back",
		"cancel_btn":     "❌ Cancel",
		"book_car_btn":   "📝 Book This Car",
		"return_car_btn": "✅ Return Car",
		"delete_car":     "🗑️ Delete Car",
		"confirm_btn":    "✅ Confirm",

		// Errors and status
		"db_error":            "❌ Error connecting to the database. Please try again later.",
		"operation_cancelled": "✅ Operation cancelled. Returning to main menu.",
		"error_try_again":     "❌ An error occurred. Please try again later.",
		"unknown_action":      "❌ I didn't understand that. Use /cancel to reset and start over.",
		"customer_not_found":  "❌ Customer not found. Please start over.",
		"car_not_found":       "❌ Car not found or no longer available.",

		// Contact
		"contact_admin_msg": "For assistance, please contact the admin group.",

		// Dealer
		"not_dealer":            "❌ You are not registered as a dealer.",
		"dealer_menu":           "Dealer Menu:",
		"dealer_add_car_btn":    "➕ Add New Car",
		"dealer_my_cars_btn":    "🚗 My Cars",
		"dealer_stats_btn":      "📊 Booking Statistics",
		"add_car_make_prompt":   "Enter the car make (e.g. Toyota):",
		"add_car_model_prompt":  "Enter the car model (e.g. Corolla):",
		"add_car_year_prompt":   "Enter the car year (e.g. 2021):",
		"add_car_photo_prompt":  "Send a photo of the car:",
		"invalid_year":          "❌ Please enter a valid year between 1950 and {max_year}.",
		"photo_required":        "❌ Please send a photo, not text.",
		"car_added":             "✅ Car added: {make} {model} ({year}).",
		"no_dealer_cars":        "You have no cars yet.",
		"dealer_car_details":    "🚗 {make} {model} ({year})\nStatus: {status}",
		"car_available":         "available",
		"car_booked":            "booked",
		"confirm_delete_car":    "Delete {make} {model} ({year})? This cannot be undone.",
		"car_deleted":           "✅ Car deleted successfully.",
		"car_delete_booked":     "❌ Cannot delete a car that is currently booked.",
		"refresh_photo_prompt":  "Send a new photo for this car:",
		"photo_updated":         "✅ Car photo updated.",
		"refresh_image_btn":     "🔄 Refresh Image",
		"dealer_stats": "📊 Your statistics:\n\nCars: {total_cars}\nTotal bookings: {total_bookings}\nActive bookings: {active_bookings}\nCompleted bookings: {completed_bookings}",
		"dealer_car_stat_line": "🚗 {make} {model} ({year}) — {bookings} bookings",

		// Admin
		"not_admin":              "❌ Admin actions are only available in the admin group.",
		"admin_menu":             "Admin Menu:",
		"admin_bookings_btn":     "📋 View Bookings",
		"admin_dealers_btn":      "👥 View Dealers",
		"all_bookings_btn":       "📋 All Bookings",
		"pending_bookings_btn":   "⏳ Pending Bookings",
		"active_bookings_btn":    "🟢 Active Bookings",
		"no_bookings":            "No bookings found.",
		"bookings_header":        "Bookings:",
		"booking_line":           "#{id} {make} {model} ({year}) — {customer}, {status}",
		"approve_btn":            "✅ Approve",
		"reject_btn":             "❌ Reject",
		"delete_btn":             "🗑️ Delete",
		"booking_approved":       "✅ Booking approved successfully.",
		"booking_rejected":       "✅ Booking rejected successfully.",
		"booking_deleted":        "✅ Booking deleted successfully.",
		"confirm_delete_booking": "Delete booking #{id}? This cannot be undone.",
		"booking_not_found":      "❌ Booking not found or already processed.",
		"no_dealers":             "No dealers registered.",
		"dealers_header":         "Dealers:",
		"add_dealer_btn":         "➕ Add Dealer",
		"delete_dealer_btn":      "🗑️ Delete Dealer",
		"add_dealer_name_prompt": "Enter the dealer's name:",
		"add_dealer_id_prompt":   "Enter the dealer's Telegram ID (a number):",
		"invalid_telegram_id":    "❌ Telegram ID must be a number.",
		"dealer_added":           "✅ Dealer {name} added.",
		"dealer_exists":          "❌ Dealer with this Telegram ID already exists.",
		"dealer_deleted":         "✅ Dealer and all their cars deleted successfully.",
		"dealer_not_found":       "❌ Dealer not found.",
		"confirm_delete_dealer":  "Delete dealer {name} and all their cars? This cannot be undone.",
	},

	"ru": {
		// Start
		"welcome_new":       "👋 Добро пожаловать, {name}! Вы зарегистрированы как клиент.",
		"welcome_back":      "👋 С возвращением, {name}!",
		"admin_restriction": "❌ Действия клиентов недоступны в группе администраторов.",
		"select_language":   "Please select your language / Пожалуйста, выберите язык:",
		"language_changed":  "✅ Язык изменен на русский",

		// Main menu
		"main_menu":           "Главное меню:",
		"list_cars_btn":       "🚗 Список автомобилей",
		"my_booking_btn":      "📄 Моя бронь",
		"contact_admin_btn":   "📞 Связаться с админом",
		"change_language_btn": "🌐 Сменить язык",

		// Car listing
		"select_car":  "Выберите автомобиль для просмотра деталей:",
		"no_cars":     "Сейчас нет доступных автомобилей.",
		"car_details": "🚗 {make} {model} ({year})\n👤 Дилер: {dealer}",

		// Booking
		"booking_success":   "✅ Автомобиль успешно забронирован!\nВы можете посмотреть детали в разделе 'Моя бронь'.",
		"booking_failed":    "❌ Ошибка бронирования: {reason}",
		"no_active_booking": "У вас нет активных бронирований.",
		"active_booking":    "Ваше активное бронирование:\n\n{booking_info}",
		"return_success":    "✅ Автомобиль успешно возвращен!",
		"return_failed":     "❌ Ошибка возврата: {reason}",

		// Booking failure reasons
		"reason_car_unavailable":  "Этот автомобиль недоступен для бронирования. Возможно, его только что забронировали.",
		"reason_car_missing":      "Этот автомобиль не найден в нашей базе.",
		"reason_already_booked":   "У вас уже есть активное бронирование.",
		"reason_booking_missing":  "Бронирование не найдено или уже завершено.",
		"reason_database_error":   "Произошла ошибка базы данных. Попробуйте позже.",

		// Navigation
		"back_btn":       "🔙 Назад",
		"cancel_btn":     "❌ Отмена",
		"book_car_btn":   "📝 Забронировать",
		"return_car_btn": "✅ Вернуть автомобиль",
		"delete_car":     "🗑️ Удалить автомобиль",
		"confirm_btn":    "✅ Подтвердить",

		// Errors and status
		"db_error":            "❌ Ошибка подключения к базе данных. Попробуйте позже.",
		"operation_cancelled": "✅ Операция отменена. Возврат в главное меню.",
		"error_try_again":     "❌ Произошла ошибка. Попробуйте еще раз.",
		"unknown_action":      "❌ Не понимаю. Используйте /cancel, чтобы начать заново.",
		"customer_not_found":  "❌ Клиент не найден. Начните сначала.",
		"car_not_found":       "❌ Автомобиль не найден или недоступен.",

		// Contact
		"contact_admin_msg": "Для помощи свяжитесь с группой администраторов.",

		// Dealer
		"not_dealer":            "❌ Вы не зарегистрированы как дилер.",
		"dealer_menu":           "Меню дилера:",
		"dealer_add_car_btn":    "➕ Добавить автомобиль",
		"dealer_my_cars_btn":    "🚗 Мои автомобили",
		"dealer_stats_btn":      "📊 Статистика бронирований",
		"add_car_make_prompt":   "Введите марку автомобиля (например, Toyota):",
		"add_car_model_prompt":  "Введите модель автомобиля (например, Corolla):",
		"add_car_year_prompt":   "Введите год выпуска (например, 2021):",
		"add_car_photo_prompt":  "Отправьте фото автомобиля:",
		"invalid_year":          "❌ Введите корректный год от 1950 до {max_year}.",
		"photo_required":        "❌ Пожалуйста, отправьте фото, а не текст.",
		"car_added":             "✅ Автомобиль добавлен: {make} {model} ({year}).",
		"no_dealer_cars":        "У вас пока нет автомобилей.",
		"dealer_car_details":    "🚗 {make} {model} ({year})\nСтатус: {status}",
		"car_available":         "доступен",
		"car_booked":            "забронирован",
		"confirm_delete_car":    "Удалить {make} {model} ({year})? Это действие необратимо.",
		"car_deleted":           "✅ Автомобиль удален.",
		"car_delete_booked":     "❌ Нельзя удалить автомобиль, который сейчас забронирован.",
		"refresh_photo_prompt":  "Отправьте новое фото для этого автомобиля:",
		"photo_updated":         "✅ Фото автомобиля обновлено.",
		"refresh_image_btn":     "🔄 Обновить фото",
		"dealer_stats": "📊 Ваша статистика:\n\nАвтомобили: {total_cars}\nВсего бронирований: {total_bookings}\nАктивных: {active_bookings}\nЗавершенных: {completed_bookings}",
		"dealer_car_stat_line": "🚗 {make} {model} ({year}) — бронирований: {bookings}",

		// Admin
		"not_admin":              "❌ Действия администратора доступны только в группе администраторов.",
		"admin_menu":             "Меню администратора:",
		"admin_bookings_btn":     "📋 Бронирования",
		"admin_dealers_btn":      "👥 Дилеры",
		"all_bookings_btn":       "📋 Все бронирования",
		"pending_bookings_btn":   "⏳ Ожидающие",
		"active_bookings_btn":    "🟢 Активные",
		"no_bookings":            "Бронирования не найдены.",
		"bookings_header":        "Бронирования:",
		"booking_line":           "#{id} {make} {model} ({year}) — {customer}, {status}",
		"approve_btn":            "✅ Одобрить",
		"reject_btn":             "❌ Отклонить",
		"delete_btn":             "🗑️ Удалить",
		"booking_approved":       "✅ Бронирование одобрено.",
		"booking_rejected":       "✅ Бронирование отклонено.",
		"booking_deleted":        "✅ Бронирование удалено.",
		"confirm_delete_booking": "Удалить бронирование #{id}? Это действие необратимо.",
		"booking_not_found":      "❌ Бронирование не найдено или уже обработано.",
		"no_dealers":             "Дилеры не зарегистрированы.",
		"dealers_header":         "Дилеры:",
		"add_dealer_btn":         "➕ Добавить дилера",
		"delete_dealer_btn":      "🗑️ Удалить дилера",
		"add_dealer_name_prompt": "Введите имя дилера:",
		"add_dealer_id_prompt":   "Введите Telegram ID дилера (число):",
		"invalid_telegram_id":    "❌ Telegram ID должен быть числом.",
		"dealer_added":           "✅ Дилер {name} добавлен.",
		"dealer_exists":          "❌ Дилер с таким Telegram ID уже существует.",
		"dealer_deleted":         "✅ Дилер и все его автомобили удалены.",
		"dealer_not_found":       "❌ Дилер не найден.",
		"confirm_delete_dealer":  "Удалить дилера {name} и все его автомобили? Это действие необратимо.",
	},
}
