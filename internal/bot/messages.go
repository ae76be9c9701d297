package bot

// Canned reply texts. Everything the bot says is plain text in Russian;
// no markup, the transport sends these verbatim.

const introText = `Привет! Я помогаю разобраться в магистерских программах ИТМО:
• «Искусственный интеллект» (ai)
• «Управление ИИ-продуктами» (ai_product)

Что я умею:
• «программы» — список программ
• «программа ai» / «программа ai product» — выбрать программу
• «теги: ml, nlp, python» — задать бэкграунд и интересы
• «рекомендации 2 семестр» — подобрать выборные дисциплины
• «обязательные дисциплины 1 семестр» / «выборные 2 семестр»
• «практика», «гиа», «soft skills»
• «сравни программы» — что выбрать под твой бэкграунд
• «найди курс: глубокое обучение» — поиск по учебному плану

Я отвечаю только на вопросы по обучению на этих двух программах.`

const outOfDomainText = `Я отвечаю только на вопросы про обучение на программах «Искусственный интеллект» и «Управление ИИ-продуктами»: учебный план, дисциплины, практика, ГИА, выбор программы и рекомендации по выборным. Напиши «помощь», чтобы увидеть примеры запросов.`

const tagsPromptText = `Напиши теги после двоеточия. Пример: «теги: ml, nlp, python, sys».`

const tagsRequiredText = `Сначала задай теги (бэкграунд). Пример: «теги: ml, nlp, python».`

const semesterRequiredText = `Укажи номер семестра. Пример: «обязательные дисциплины 1 семестр».`

const searchPromptText = `Напиши, что искать. Пример: «найди курс: глубокое обучение».`

const recommendEmptyText = `Пока не нашёл подходящих выборных — попробуй расширить теги или убрать номер семестра.`

const compareBlurbText = `Коротко о различиях:
• «Искусственный интеллект» — инженерно-исследовательский трек: ML/DL, CV, NLP, работа с данными и вычислительной инфраструктурой.
• «Управление ИИ-продуктами» — продуктовый трек: продуктовая аналитика, метрики, монетизация и управление командами, создающими ИИ-продукты.`
