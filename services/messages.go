package services

// Fixed reply texts. The bot speaks Brazilian Portuguese.
const (
	msgGreeting = "Olá! Que bom ter você aqui! 😊\n\n" +
		"Eu sou o Meals AI e estou aqui para te ajudar a acompanhar sua alimentação de forma saudável e consciente.\n\n" +
		"Como posso te ajudar hoje? Você pode:\n" +
		"• Descrever sua refeição para eu analisar\n" +
		"• Enviar uma foto do seu prato\n" +
		"• Pedir um resumo do seu dia\n\n" +
		"Estou aqui para te apoiar na sua jornada! 💪"

	msgHelp = "Olá! Fico feliz em te ajudar! 😊\n\n" +
		"Aqui estão as formas de interagir comigo:\n\n" +
		"📝 Análise Nutricional:\n" +
		"• Envie uma mensagem descrevendo sua refeição (ex: \"2 peitos de frango, 200g de arroz e salada\")\n" +
		"• Ou envie uma foto do seu prato e eu analiso para você\n\n" +
		"📊 Resumos:\n" +
		"• Digite \"resumo\" ou \"hoje\" para ver seu resumo nutricional do dia\n" +
		"• Digite \"relatório semanal\" para o relatório da semana\n\n" +
		"🎯 Metas:\n" +
		"• Digite \"meta\" para definir ou atualizar sua meta diária de calorias\n\n" +
		"💬 Comandos:\n" +
		"• Digite \"ajuda\" ou \"help\" para ver esta mensagem novamente\n\n" +
		"Estou sempre aqui para te ajudar! 😄"

	msgNotUnderstood = "Desculpe, não consegui entender sua mensagem. 😅\n\n" +
		"Mas não se preocupe! Você pode:\n" +
		"• Descrever sua refeição para análise\n" +
		"• Enviar uma foto do seu prato\n" +
		"• Digitar \"resumo\" para ver seu resumo do dia\n" +
		"• Digitar \"ajuda\" para ver todos os comandos disponíveis\n\n" +
		"Vamos tentar novamente? 😊"

	msgCouldNotProcess = "Ops, não consegui processar sua mensagem agora. 😔\n" +
		"Pode tentar de novo em instantes?"

	msgCouldNotCalculate = "Não consegui calcular os nutrientes dessa refeição. 😅\n" +
		"Tenta descrever de outro jeito? Por exemplo: \"200g de arroz e 100g de frango grelhado\"."

	msgFoodListPlaceholder = "Em breve você poderá consultar a lista completa de alimentos por aqui! 🥗"

	msgOnboardingWelcome = "Oi! Eu sou o Meals AI! 👋\n\n" +
		"Vou te ajudar a acompanhar sua alimentação todos os dias.\n\n" +
		"Para começar: qual é a sua meta diária de calorias? " +
		"Me manda só o número (ex: 2000)."

	msgOnboardingGoalInvalid = "Hmm, esse valor não parece válido. 🤔\n" +
		"Me manda um número de calorias entre %d e %d, por exemplo: 2000."

	msgOnboardingExplaining = "Perfeito, meta de %d kcal registrada! 🎯\n\n" +
		"Funciona assim: sempre que você comer, me conta o que foi " +
		"(ou manda uma foto do prato) e eu calculo calorias, proteínas, " +
		"carboidratos e gorduras pra você.\n\n" +
		"Me responde com um \"ok\" quando quiser praticar!"

	msgOnboardingExplainReminder = "Quando estiver pronto para praticar, me responde com um \"ok\"! 😊"

	msgOnboardingPractice = "Vamos praticar! 🍽️\n\n" +
		"Me descreve agora uma refeição que você fez hoje. " +
		"Por exemplo: \"200g de arroz e 100g de frango grelhado\"."

	msgOnboardingSuccess = "\n\n🎉 Parabéns, você completou o tutorial! " +
		"A partir de agora é só me contar o que você comeu."

	msgOnboardingRetry = "Quase lá! Não consegui analisar essa descrição. 😅\n" +
		"Tenta de novo com alimentos e quantidades, por exemplo: " +
		"\"200g de arroz e 100g de frango grelhado\"."

	msgGoalPromptWithCurrent = "Sua meta atual é de %d kcal por dia. 🎯\n" +
		"Me manda o novo valor para atualizar!"

	msgGoalPromptNoCurrent = "Você ainda não tem uma meta diária de calorias. 🎯\n" +
		"Me manda um número (ex: 2000) para definir!"

	msgGoalUpdated = "Meta atualizada para %d kcal por dia! 🎯"

	msgGoalParseFailed = "Não consegui identificar o valor. 🤔\n" +
		"Me manda só o número da meta, entre %d e %d (ex: 2000)."

	msgConfirmationRejected = "Sem problemas, descartei essa análise! 👍\n" +
		"Pode me descrever a refeição por texto, se preferir."

	msgImageNotFood = "Hmm, essa foto não parece ser de comida. 🤔\n" +
		"Me manda uma foto do seu prato que eu analiso pra você!"

	msgImageConfirmPrefix = "Identifiquei estes alimentos na foto: 📸\n\n"
	msgImageConfirmSuffix = "\nEstá certo? Responde \"sim\" para eu calcular os nutrientes ou \"não\" para descartar."
)
