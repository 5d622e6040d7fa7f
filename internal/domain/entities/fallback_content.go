package entities

// Built-in fallback content. Used when the external content catalog is
// missing or unreadable, so prediction serving never hard-fails. The pools
// are intentionally small; the external catalog is the real content source.

// fallbackGeneral holds per-sign general predictions.
var fallbackGeneral = map[Sign][]string{
	Aries: {
		"Сегодня ваша энергия на пике — смело беритесь за то, что давно откладывали.",
		"Решительность Овна откроет дверь, которая казалась закрытой.",
		"Импульс дня благоприятен для начала нового дела.",
	},
	Taurus: {
		"Спокойная настойчивость принесёт больше, чем спешка.",
		"День подходит для укрепления того, что уже построено.",
		"Доверяйте своему чувству меры — оно сегодня особенно точно.",
	},
	Gemini: {
		"Новая информация придёт из неожиданного разговора.",
		"Лёгкость общения сегодня — ваш главный ресурс.",
		"Две возможности появятся одновременно: выбирайте ту, что любопытнее.",
	},
	Cancer: {
		"Интуиция подскажет верное решение — прислушайтесь к ней.",
		"Домашние дела принесут неожиданное удовлетворение.",
		"Забота о близких вернётся к вам сторицей.",
	},
	Leo: {
		"Ваше обаяние сегодня работает на вас — используйте его щедро.",
		"День благоприятен для публичных выступлений и ярких решений.",
		"Великодушие Льва привлечёт нужных людей.",
	},
	Virgo: {
		"Внимание к деталям поможет заметить то, что упустили другие.",
		"Порядок в мелочах принесёт ясность в большом.",
		"Практичный подход сегодня эффективнее вдохновения.",
	},
	Libra: {
		"Гармония рядом — достаточно перестать торопить события.",
		"Сегодня вам особенно удаются компромиссы.",
		"Красота и баланс станут источником сил.",
	},
	Scorpio: {
		"Глубина вашего взгляда на вещи сегодня даст преимущество.",
		"День подходит для завершения того, что тянулось слишком долго.",
		"Скрытое станет явным — и это к лучшему.",
	},
	Sagittarius: {
		"Горизонт шире, чем кажется — сделайте шаг навстречу новому.",
		"Оптимизм Стрельца сегодня заразителен и полезен.",
		"Дальняя цель станет ближе благодаря одному смелому решению.",
	},
	Capricorn: {
		"Методичность принесёт результат раньше намеченного срока.",
		"Сегодня закладывается фундамент долгосрочного успеха.",
		"Дисциплина — ваш тихий союзник в шумный день.",
	},
	Aquarius: {
		"Нестандартная идея окажется самой практичной.",
		"День благоприятен для экспериментов и свежих взглядов.",
		"Ваша независимость сегодня вдохновит окружающих.",
	},
	Pisces: {
		"Творческое настроение подскажет неожиданный выход.",
		"Мягкость сегодня сильнее напора.",
		"Сон или случайная мысль принесут важную подсказку.",
	},
}

// fallbackUniversal holds sign-agnostic predictions per category.
var fallbackUniversal = map[Category][]string{
	CategoryGeneral: {
		"Звёзды готовят для вас удивительные возможности!",
		"Сегодня благоприятный день для новых начинаний.",
		"Неожиданная встреча изменит ваши планы к лучшему.",
		"Прислушайтесь к интуиции — она не подведёт.",
		"День подходит для наведения порядка в делах и мыслях.",
		"Маленький шаг сегодня приведёт к большому результату завтра.",
		"Хорошие новости придут оттуда, откуда не ждали.",
		"Сохраняйте спокойствие — обстоятельства складываются в вашу пользу.",
		"Время пересмотреть старое решение свежим взглядом.",
		"Щедрость к окружающим вернётся вдвойне.",
		"Вечер принесёт ясность в запутанный вопрос.",
		"Доверяйте процессу: всё движется в нужную сторону.",
	},
	CategoryLove: {
		"В любви вас ждут приятные моменты.",
		"Откровенный разговор укрепит близкие отношения.",
		"Сегодня легко заметить знаки внимания — не пропустите их.",
		"Тепло, которое вы отдаёте, сегодня вернётся.",
		"Небольшой сюрприз близкому человеку сделает день особенным.",
		"Романтическое настроение создаст благоприятную атмосферу.",
	},
	CategoryCareer: {
		"Карьера развивается в положительном направлении.",
		"Ваша инициатива будет замечена руководством.",
		"День подходит для планирования следующего профессионального шага.",
		"Совместная работа принесёт больше, чем одиночные усилия.",
		"Сложная задача поддастся, если разбить её на части.",
		"Новый контакт окажется полезным для дела.",
	},
	CategoryFinance: {
		"Финансы стабильны — время подумать о будущем.",
		"Избегайте импульсивных покупок сегодня.",
		"Небольшая экономия сегодня убережёт от расходов завтра.",
		"Появится возможность дополнительного дохода.",
		"Пересмотрите бюджет — найдётся скрытый резерв.",
		"Финансовый совет от близкого человека окажется ценным.",
	},
	CategoryHealth: {
		"Здоровье требует внимания — не откладывайте отдых.",
		"Прогулка на свежем воздухе вернёт силы.",
		"Прислушайтесь к телу: оно подскажет, что нужно.",
		"День подходит для начала полезной привычки.",
		"Умеренность сегодня — лучшее лекарство.",
		"Хороший сон решит больше проблем, чем кажется.",
	},
	CategoryAdvice: {
		"Слушайте свою интуицию.",
		"Не бойтесь попросить о помощи.",
		"Сначала выслушайте, потом решайте.",
		"Лучшее — враг хорошего: не переусердствуйте.",
		"Одно доброе слово сегодня важнее десяти правильных.",
		"Отложите важное решение до ясной головы.",
	},
}

// FallbackCatalog returns the built-in content catalog. BaseScores is nil:
// the scorer generates its own default matrix.
func FallbackCatalog() *Catalog {
	personal := make(map[Sign]map[Category][]string, len(fallbackGeneral))
	for sign, pool := range fallbackGeneral {
		personal[sign] = map[Category][]string{CategoryGeneral: pool}
	}
	universal := make(map[Category][]string, len(fallbackUniversal))
	for category, pool := range fallbackUniversal {
		universal[category] = pool
	}
	return &Catalog{
		Personal:  personal,
		Universal: universal,
	}
}
