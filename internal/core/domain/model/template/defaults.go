package template

import "ordernotify/internal/core/domain/model/order"

// Placeholder groups shared by several default definitions.
var (
	commonPlaceholders = []string{
		TokenCustomerName, TokenOrderID, TokenItemsList, TokenTotalAmount,
		TokenAddress, TokenCity, TokenPhoneNumber,
	}
	trackingPlaceholders = append(append([]string{}, commonPlaceholders...),
		TokenTrackingNumber, TokenTrackingLink)
	courierStatusPlaceholders = append(append([]string{}, trackingPlaceholders...),
		TokenLatestCourierStatus)
	newOrderPlaceholders = append(append([]string{}, commonPlaceholders...),
		TokenAdvancePaymentPrice, TokenPaymentAccount, TokenPaymentAccountName,
		TokenDiscountPercentage)
	manualStatusPlaceholders = []string{TokenCustomerName, TokenOrderID, TokenAppStatus}
)

// Defaults returns the built-in template for every notification intent. The
// message bodies are the store's stock Roman-Urdu wording; operators replace
// them through the settings workflow.
func Defaults() map[order.MessageIntent]Definition {
	return map[order.MessageIntent]Definition{
		order.IntentNewOrderInitial: {
			Name:         "Initial New Order Notification",
			Description:  "Sent when a new order is created. Includes payment options and discount for advance payment.",
			Placeholders: newOrderPlaceholders,
			Template: "🎉 *Aapka Order Confirm Hogaya Hai!* 🎉\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Aap ka order ID {{orderId}} humain mosool ho gaya hai. Hum jald hi isay process karain gey.\n\n" +
				"📍 *Delivery Address:*\n{{address}}, {{city}}\n\n" +
				"📦 *Order Tafseelat:*\n{{itemsList}}\n" +
				"\n💰 *Payment Options:*\n" +
				"1️⃣ *Cash on Delivery (COD):* {{totalAmount}}\n" +
				"2️⃣ *Advance Payment ({{discountPercentage}}% Discount):* {{advancePaymentPrice}}\n\n" +
				"✨ *Advance Payment ke liye:* ✨\n" +
				"Agar aap {{discountPercentage}}% discount hasil karna chahte hain, to {{advancePaymentPrice}} neeche diye gaye account par bhaijain:\n\n" +
				"   🔵 *Payment Account:*\n" +
				"   Account Number: {{paymentAccountNumber}}\n" +
				"   Account Name: {{paymentAccountName}}\n\n" +
				"Payment ke baad, transaction ka screenshot isi number par WhatsApp karain. " +
				"Aap ka order discount ke sath confirm hojayega.\n\n" +
				"Kisi bhi sawal ya mazeed maloomat ke liye, aap hum se isi number par rabta kar sakte hain.\n\n" +
				"Shukriya! 😊",
		},
		order.IntentConfirmationReminder: {
			Name:         "Order Confirmation Reminder",
			Description:  "Sent if the customer hasn't confirmed their order after a set period.",
			Placeholders: commonPlaceholders,
			Template: "📢 *Order Confirmation Reminder*\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Yeh message aap ke order ID {{orderId}} ki confirmation ke liye hai.\n\n" +
				"Barah-e-karam, apna order confirm karne ke liye is message ka jawab *'Yes'* likh kar dain.\n\n" +
				"Agar aap order cancel karna chahte hain ya koi tabdeeli darkaar hai, to woh bhi humain batayen.\n\n" +
				"Shukriya.",
		},
		order.IntentProcessingConfirmed: {
			Name:         "Order Processing Confirmed",
			Description:  "Sent after customer confirms order, before dispatch.",
			Placeholders: commonPlaceholders,
			Template: "✅ *Order Confirmed & Processing Shuru!* ✅\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Aap ka order ID {{orderId}} confirm ho chuka hai aur ab processing mein hai. Hum jald hi isay dispatch karne ki koshish karenge.\n\n" +
				"Order Tafseelat:\n{{itemsList}}\n" +
				"Total Amount: {{totalAmount}}\n\n" +
				"Dispatch ki ittila aap ko jald di jayegi.\n\n" +
				"Shukriya!",
		},
		order.IntentDispatchNotification: {
			Name:         "Order Dispatch Notification",
			Description:  "Sent when an order is dispatched. Includes tracking information.",
			Placeholders: trackingPlaceholders,
			Template: "🚚 *Aapka Order Dispatch Hogaya Hai!* 📦\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Khushkhabri! Aap ka order ID {{orderId}} dispatch kar diya gaya hai aur jald hi aap ko mosool ho jaye ga.\n\n" +
				"📍 *Delivery Address:*\n{{address}}, {{city}}\n\n" +
				"📦 *Order Tafseelat:*\n{{itemsList}}\n" +
				"\n🔎 *Tracking Information:*\n" +
				"Tracking ID (CN): *{{trackingNumber}}*\n" +
				"Aap apna parcel yahan track kar sakte hain:\n" +
				"{{trackingLink}}\n" +
				"\nBarah-e-karam apna phone on rakhein takay delivery associate aap se rabta kar sakay.\n" +
				"Delivery ke waqt COD amount tayyar rakhein (agar lagu ho).\n\n" +
				"Kisi bhi sawal ke liye, hum se rabta karein.\n\n" +
				"Shukriya! 😊",
		},
		order.IntentCancellationNotice: {
			Name:         "Order Cancellation Notification",
			Description:  "Sent when an order is cancelled.",
			Placeholders: commonPlaceholders,
			Template: "❌ *Order Cancellation Ittila* ❌\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Afsos ke sath aap ko ittila di jati hai ke aap ka order ID {{orderId}} cancel kar diya gaya hai.\n\n" +
				"Items:\n{{itemsList}}\n" +
				"\nAgar aap ne koi advance payment ki thi, to aap ka refund 24-48 working hours mein process kar diya jaye ga.\n\n" +
				"Kisi bhi ki pareshani ke liye hum mazrat khwaah hain.\n" +
				"Mazeed maloomat ke liye hum se rabta karein.\n\n" +
				"Shukriya.",
		},
		order.IntentShipmentPickedUp: {
			Name:         "Courier: Shipment Picked Up",
			Description:  "Sent when courier has picked up the shipment.",
			Placeholders: courierStatusPlaceholders,
			Template: "📦 *Shipment Courier Ne Pick Kar Liya Hai!* 📦\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Aap ka order ID {{orderId}} (Tracking #: {{trackingNumber}}) courier ne pick kar liya hai aur ab yeh {{latestCourierStatus}} status mein hai.\n\n" +
				"Aap apni shipment yahan track kar sakte hain: {{trackingLink}}\n\n" +
				"Shukriya.",
		},
		order.IntentInTransitUpdate: {
			Name:         "Courier: In Transit Update",
			Description:  "Sent for generic 'In Transit' updates from the courier.",
			Placeholders: courierStatusPlaceholders,
			Template: "✈️ *Shipment Raastay Mein Hai!* ✈️\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Aap ka order ID {{orderId}} (Tracking #: {{trackingNumber}}) ab 'In Transit' hai. Status: {{latestCourierStatus}}.\n\n" +
				"Delivery ki expected date jald update ki jayegi. Tracking Link: {{trackingLink}}\n\n" +
				"Shukriya.",
		},
		order.IntentOutForDelivery: {
			Name:         "Courier: Out for Delivery",
			Description:  "Sent when the courier status indicates the parcel is out for delivery.",
			Placeholders: trackingPlaceholders,
			Template: "🛵 *Parcel Delivery Ke Liye Nikal Chuka Hai!* 🛵\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Aap ka order ID {{orderId}} (Tracking #: {{trackingNumber}}) aaj delivery ke liye nikal chuka hai.\n\n" +
				"Delivery rider jald hi aap se rabta karega. Barah-e-karam apna phone on rakhein aur COD amount (agar ho) tayyar rakhein.\n\n" +
				"Tracking Link: {{trackingLink}}\n\n" +
				"Agar koi masla ho to fori hum se rabta karein.\n\n" +
				"Shukriya.",
		},
		order.IntentAddressNeeded: {
			Name:         "Courier: Address Information Needed",
			Description:  "Sent when the courier status indicates more address information is needed.",
			Placeholders: trackingPlaceholders,
			Template: "⚠️ *Address Ki Maloomat Darkaar Hain!* ⚠️\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Aap ke order ID {{orderId}} (Tracking #: {{trackingNumber}}) ki delivery ke liye courier company ko aap ke address ki mazeed/mukammal tafseel darkaar hai.\n\n" +
				"Barah-e-karam, apna *mukammal address* (Makan No, Gali No, Sector/Block, qareebi nishani, aur shehar) is message ke jawab mein jald az jald faraham karein takay aap ka parcel bina kisi takheer ke deliver ho sakay.\n\n" +
				"Maslan: Makan #123, Gali #4, ABC Town, School ke pas, Lahore.\n\n" +
				"Aap ke taawun ka shukriya.",
		},
		order.IntentPremisesClosed: {
			Name:         "Courier: Recipient Premises Closed",
			Description:  "Sent if delivery attempt failed because recipient's premises were closed.",
			Placeholders: courierStatusPlaceholders,
			Template: "⚠️ *Delivery Attempt - Maqam Band Tha* ⚠️\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Aap ke order ID {{orderId}} (Tracking #: {{trackingNumber}}) ki delivery ki koshish ki gayi thi, lekin maqam band honay ki wajah se deliver nahi ho saka. Status: {{latestCourierStatus}}.\n\n" +
				"Courier company jald hi dobara delivery ki koshish karegi. Agar aap kal available nahi hain, to barah-e-karam humein inform karein ya courier helpline se rabta karein.\n\n" +
				"Tracking Link: {{trackingLink}}\n\n" +
				"Shukriya.",
		},
		order.IntentDeliveredThankYou: {
			Name:         "Courier: Order Delivered - Thank You",
			Description:  "Sent after successful delivery to thank the customer and ask for feedback.",
			Placeholders: trackingPlaceholders,
			Template: "🌟 *Order Delivered - Aapka Bohat Shukriya!* 🌟\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Humein khushi hai ke aap ka order ID {{orderId}} kamyaabi se deliver ho gaya hai!\n\n" +
				"Umeed hai aap apni kharidari se mutmain honge. Agar aap ka koi feedback ya tajweez ho, to zaroor humaray saath share karein. Aap ki raye hamare liye bohat ahmiyat rakhti hai.\n\n" +
				"Future mein bhi aap ki khidmat ka mauqa mile, iski umeed karte hain.\n\n" +
				"Aik bar phir, aap ke aitmaad ka shukriya!\n\n" +
				"Stay Blessed! 😊",
		},
		order.IntentGenericCourierUpdate: {
			Name:         "Courier: Generic Status Update",
			Description:  "Sent for other courier status updates that don't have a specific message type.",
			Placeholders: courierStatusPlaceholders,
			Template: "ℹ️ *Order Status Update*\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Aapkay order ID {{orderId}} (Tracking #: {{trackingNumber}}) ka status ab \"{{latestCourierStatus}}\" hai.\n\n" +
				"Tafseelat ke liye, aap tracking link istemal kar sakte hain: {{trackingLink}}\n\n" +
				"Shukriya.",
		},
		order.IntentManualStatusChange: {
			Name:         "Manual Order Status Change",
			Description:  "Generic notification sent when an order's status is manually changed by a user.",
			Placeholders: manualStatusPlaceholders,
			Template: "📢 *Order Update*\n\n" +
				"Assalam-o-Alaikum {{customerName}},\n" +
				"Aap ke order ID {{orderId}} ka status update ho kar \"{{appStatus}}\" kar diya gaya hai.\n\n" +
				"Agar aap ke koi sawalat hon, to aap hum se rabta kar sakte hain.\n\n" +
				"Shukriya.",
		},
	}
}
