package bot

// Fixed user-facing texts. Start and help go out as plain text; the file
// listing and upload confirmation use Markdown parse mode.
const (
	welcomeText = "🎉 Welcome to your Personal File Manager Bot!\n\n" +
		"I can help you store and manage your files securely. Here's what I can do:\n\n" +
		"📤 **Upload Files**: Send me any file and I'll store it safely\n" +
		"📁 **View Files**: Use /myfiles to see all your stored files\n" +
		"❓ **Get Help**: Use /help for more information\n\n" +
		"Ready to get started? Send me a file!"

	helpText = "🤖 **File Manager Bot Help**\n\n" +
		"**Available Commands:**\n" +
		"• /start - Welcome message and introduction\n" +
		"• /myfiles - View all your stored files\n" +
		"• /help - Show this help message\n\n" +
		"**How to use:**\n" +
		"1. Send me any file (document, image, video, etc.)\n" +
		"2. I'll store it and give you a confirmation\n" +
		"3. Use /myfiles to see your file collection\n" +
		"4. Click on any file to download it again\n\n" +
		"That's it! Simple and secure file storage at your fingertips! 📁✨"

	emptyStorageText = "📁 Your file storage is empty!\n\n" +
		"Send me any file to get started. I can store documents, images, videos, and more! 📤"

	failureText = "❌ Sorry, something went wrong. Please try again."
)
